package services

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/pkg/errors"
)

// Service interface
type Service interface {
	ID() string
	Run(ctx context.Context) error
}

var serviceMap map[string]Service = map[string]Service{}

func SetupLogging(w io.Writer) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(w)
}

func Register(service Service) error {
	if _, exists := serviceMap[service.ID()]; exists {
		return errors.Errorf("duplicate service registered: %s", service.ID())
	}
	serviceMap[service.ID()] = service
	return nil
}

// Lookup registered services by name.
func Lookup(names []string) ([]Service, error) {
	var ret []Service
	for _, name := range names {
		service, ok := serviceMap[name]
		if !ok {
			return nil, errors.Errorf("service %s does not exist", name)
		}
		ret = append(ret, service)
	}
	return ret, nil
}

// Launch runs the services until ctx is cancelled or one of them fails.
// The first failure cancels the rest and is returned; cancellation of ctx
// itself is not an error.
func Launch(ctx context.Context, ss []Service) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	for _, service := range ss {
		log.Printf("Starting %s\n", service.ID())
		wg.Add(1)
		go func(service Service) {
			defer wg.Done()
			err := service.Run(ctx)
			if err == nil || errors.Cause(err) == context.Canceled {
				return
			}
			once.Do(func() {
				first = errors.Wrapf(err, "running service %s", service.ID())
				cancel()
			})
		}(service)
	}
	wg.Wait()
	return first
}
