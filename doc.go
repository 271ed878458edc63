// The daylight sunrise and sunset calculator
//
// Features
//
// - Sunrise and sunset for any place on earth and any calendar day
//
// - Day and night phase, with the instant of the next change
//
// - Polar day and polar night handled as ordinary results
//
// - Civil, nautical and astronomical twilight
//
// - Named places in a YAML config file, each with its own UTC offset
//
// - A watcher emitting sunrise/sunset events as JSON lines
//
// Packages
//
// - sun: the solar calculator (no I/O, safe for concurrent use)
//
// - config: places and watcher settings
//
// - services/earth: the event watcher
//
// - cmd/daylight: the command line front end
package daylight
