package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fxpath/internal/ports"
	"fxpath/internal/types"
)

// DependencySet collects declarations per configuration in memory. It stands
// in for the dependency handler of a host build tool.
type DependencySet struct {
	order    []string
	declared map[string][]types.Declaration
	frozen   map[string]struct{}
}

func NewDependencySet() *DependencySet {
	return &DependencySet{
		declared: map[string][]types.Declaration{},
		frozen:   map[string]struct{}{},
	}
}

// Freeze makes further declarations into configuration fail, the way a
// build tool rejects changes to a resolved configuration.
func (s *DependencySet) Freeze(configuration string) {
	s.frozen[configuration] = struct{}{}
}

func (s *DependencySet) Declare(configuration string, decls []types.Declaration) error {
	if configuration == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("configuration name is empty")
	}
	if _, ok := s.frozen[configuration]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("configuration %s can no longer be changed", configuration))
	}
	if _, ok := s.declared[configuration]; !ok {
		s.order = append(s.order, configuration)
	}
	s.declared[configuration] = append(s.declared[configuration], decls...)
	return nil
}

// Configurations lists every configuration that received declarations, in
// the order they were first declared.
func (s *DependencySet) Configurations() []string {
	return append([]string(nil), s.order...)
}

func (s *DependencySet) Declarations(configuration string) []types.Declaration {
	return append([]types.Declaration(nil), s.declared[configuration]...)
}

var _ ports.DependencySinkPort = (*DependencySet)(nil)
