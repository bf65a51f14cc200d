package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want entity.Role
		ok   bool
	}{
		{"cliente", "Customer", entity.RoleCustomer, true},
		{"empleado", "Employee", entity.RoleEmployee, true},
		{"gerente", "Manager", entity.RoleManager, true},
		{"padding de CHAR al final", "Manager   ", entity.RoleManager, true},
		{"padding al inicio", "  Employee", entity.RoleEmployee, true},
		{"desconocido", "Admin", "", false},
		{"vacio", "", "", false},
		{"mayusculas distintas", "manager", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := entity.ParseRole(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleIsStaff(t *testing.T) {
	assert.False(t, entity.RoleCustomer.IsStaff())
	assert.True(t, entity.RoleEmployee.IsStaff())
	assert.True(t, entity.RoleManager.IsStaff())
}
