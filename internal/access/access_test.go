package access

import (
	"backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed(t *testing.T) {
	admin := &model.User{Role: model.RoleAdmin}
	director := &model.User{Role: model.RoleDirector}
	accounter := &model.User{Role: model.RoleAccounter}
	stranger := &model.User{Role: "intern"}

	tests := []struct {
		resource string
		user     *model.User
		want     bool
	}{
		// open resources
		{ResourceAuth, nil, true},
		{ResourceHealth, nil, true},
		{ResourceSystem, nil, true},
		{ResourceAuth, admin, true},

		// reports: any authenticated known role, never anonymous
		{ResourceReports, nil, false},
		{ResourceReports, admin, true},
		{ResourceReports, director, true},
		{ResourceReports, accounter, true},
		{ResourceReports, stranger, false},

		// users: admin only
		{ResourceUsers, admin, true},
		{ResourceUsers, director, false},
		{ResourceUsers, accounter, false},
		{ResourceUsers, nil, false},

		// accounting resources: accounter only
		{ResourceMaterials, accounter, true},
		{ResourceSupplies, accounter, true},
		{ResourceSpend, accounter, true},
		{ResourceMaterials, admin, false},
		{ResourceSupplies, director, false},
		{ResourceSpend, nil, false},

		// director resources
		{ResourceSuppliers, director, true},
		{ResourceEquipment, director, true},
		{ResourceSuppliers, accounter, false},
		{ResourceEquipment, admin, false},

		// unknown resource is always denied
		{"backups", admin, false},
	}
	for _, tt := range tests {
		name := tt.resource + "/anonymous"
		if tt.user != nil {
			name = tt.resource + "/" + tt.user.Role
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowed(tt.resource, tt.user))
		})
	}
}

func TestAllowedControllers(t *testing.T) {
	assert.Equal(t, []string{"auth", "reports", "users"}, AllowedControllers(model.RoleAdmin))
	assert.Equal(t, []string{"auth", "reports", "materials", "spend", "supplies"}, AllowedControllers(model.RoleAccounter))
	assert.Equal(t, []string{"auth", "reports", "suppliers", "equipment"}, AllowedControllers(model.RoleDirector))
	assert.Equal(t, []string{"auth"}, AllowedControllers(""))
}

func TestAllowedViews(t *testing.T) {
	assert.Equal(t, []string{"Reports", "Users"}, AllowedViews(model.RoleAdmin))
	assert.Equal(t, []string{"Reports", "Materials", "Spends", "Supplies"}, AllowedViews(model.RoleAccounter))
	assert.Equal(t, []string{"Reports", "Suppliers", "Equipment"}, AllowedViews(model.RoleDirector))
	assert.Equal(t, []string{"Login"}, AllowedViews("guest"))
}
