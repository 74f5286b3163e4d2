package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleReport_HasViolations(t *testing.T) {
	tests := []struct {
		name   string
		report ModuleReport
		want   bool
	}{
		{"clean", ModuleReport{Name: "Core"}, false},
		{"illegal module", ModuleReport{IllegalModules: []string{"Api"}}, true},
		{"private leak", ModuleReport{PrivateLeaks: []UnitViolation{{}}}, true},
		{"cycle", ModuleReport{Cycles: [][]string{{"A", "B", "A"}}}, true},
		{"distance overage", ModuleReport{Metrics: Metrics{DistanceOverage: 0.1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.report.HasViolations())
		})
	}
}

func TestReport_Failed(t *testing.T) {
	assert.False(t, Report{}.Failed())
	assert.True(t, Report{Summary: Summary{Cycles: 1}}.Failed())
	assert.Equal(t, 4, Summary{Modules: 3, IllegalModules: 1, ForbiddenDependencies: 1, PrivateLeaks: 1, Cycles: 1}.Violations())
}
