package config

// ExampleYaml is a sample configuration, printed by `daylight sample`.
var ExampleYaml = `earth:
  latitude: 51.5072
  longitude: -0.1276
  offset: "+00:00"
places:
  moscow:
    latitude: 55.7522222
    longitude: 37.6155556
    offset: "+03:00"
  honolulu:
    latitude: 21.3069444
    longitude: -157.8583333
    offset: "-10:00"
  tiksi:
    latitude: 71.635604
    longitude: 128.882922
    offset: "+09:00"
  melbourne:
    latitude: -37.8136
    longitude: 144.9631
watch:
  status: 1h
`
