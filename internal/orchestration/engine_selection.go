package orchestration

import (
	"github.com/agbru/uintcalc/internal/calc"
)

// GetEnginesToRun determines which engines should be executed based on the
// configured engine name. Returns engines in alphabetically sorted order
// for consistent, reproducible behavior.
func GetEnginesToRun(name string, factory calc.EngineFactory) []calc.Engine {
	if name == "all" {
		return factory.GetAll()
	}
	if engine, err := factory.Get(name); err == nil {
		return []calc.Engine{engine}
	}
	return nil
}
