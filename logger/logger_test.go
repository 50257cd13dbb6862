package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Errorf("GetLogger() = nil, expected a non-nil logger")
	}

	var wg sync.WaitGroup
	for routine := 0; routine < 2; routine++ {
		wg.Add(1)
		go func(routineNum int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if GetLogger() != GetLogger() {
					t.Errorf("GetLogger() returned different loggers in goroutine %d", routineNum)
					return
				}
			}
		}(routine)
	}
	wg.Wait()
}

func TestGetLoggerConfiguredSetsLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	GetLoggerConfigured(zerolog.WarnLevel)
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("GlobalLevel() = %v, expected %v", zerolog.GlobalLevel(), zerolog.WarnLevel)
	}

	GetLoggerConfigured(zerolog.Disabled)
	if zerolog.GlobalLevel() != zerolog.Disabled {
		t.Errorf("GlobalLevel() = %v, expected %v", zerolog.GlobalLevel(), zerolog.Disabled)
	}
}
