package dpll

import (
	"github.com/arcrouting/tunnelsat/satfacade"
	"github.com/sirupsen/logrus"
)

// Solver is the satfacade.Solver backend implemented by this package.
type Solver struct {
	// Log receives progress messages; a nil Log uses logrus.StandardLogger().
	Log *logrus.Logger
}

// New returns a Solver logging through log (or the standard logger if nil).
func New(log *logrus.Logger) *Solver {
	return &Solver{Log: log}
}

func (s *Solver) logger() *logrus.Entry {
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("component", "satfacade/dpll")
}

// Solve converts f to CNF via Tseitin transformation and decides it with
// DPLL search.
func (s *Solver) Solve(ctx *satfacade.Context, f satfacade.Formula) (satfacade.Result, satfacade.Model) {
	entry := s.logger()
	c := tseitin(ctx, f)
	entry.WithField("clauses", len(c.clauses)).WithField("vars", c.numVars).Debug("dpll: starting search")

	a, ok := solve(c)
	if !ok {
		entry.Debug("dpll: unsatisfiable")
		return satfacade.Unsatisfiable, satfacade.Model{}
	}

	values := make([]bool, c.origVars)
	for i := 0; i < c.origVars; i++ {
		values[i] = a[i] == 1
	}
	entry.Debug("dpll: satisfiable")
	return satfacade.Satisfiable, satfacade.NewModel(ctx, values, entry)
}
