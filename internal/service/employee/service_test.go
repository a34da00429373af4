package employee

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"
)

var (
	adminCtx    = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "adm-1", Username: "admin", Role: employee.RoleAdmin})
	employeeCtx = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "emp-1", Username: "anna", Role: employee.RoleEmployee})
)

func setupEmployeeService(t *testing.T) (*EmployeeServiceImpl, employee.EmployeeRepository) {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))

	repo := sqlite.NewEmployeeRepository(db)
	for _, e := range []employee.Employee{
		{ID: "adm-1", Username: "admin", PasswordHash: "x", Role: employee.RoleAdmin, DisplayName: "Admin"},
		{ID: "emp-1", Username: "anna", PasswordHash: "x", Role: employee.RoleEmployee, DisplayName: "Anna"},
	} {
		_, err := repo.Create(context.Background(), e)
		require.NoError(t, err)
	}

	return &EmployeeServiceImpl{employeeRepo: repo, bcryptCost: bcrypt.MinCost}, repo
}

func TestCreate(t *testing.T) {
	service, repo := setupEmployeeService(t)
	dept := " Sales "
	quota := 28

	resp, err := service.Create(adminCtx, employee.CreateEmployeeRequest{
		Username:      " Ben.Wagner ",
		Password:      "secret123",
		DisplayName:   "Ben Wagner",
		Department:    &dept,
		VacationQuota: &quota,
	})

	require.NoError(t, err)
	assert.Equal(t, "ben.wagner", resp.Username)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Sales", *resp.Department)
	parsed, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreate_Errors(t *testing.T) {
	service, _ := setupEmployeeService(t)

	_, err := service.Create(employeeCtx, employee.CreateEmployeeRequest{Username: "ben", Password: "secret", DisplayName: "Ben"})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)

	_, err = service.Create(adminCtx, employee.CreateEmployeeRequest{Username: "ANNA", Password: "secret", DisplayName: "Anna 2"})
	assert.ErrorIs(t, err, employee.ErrUsernameExists)

	_, err = service.Create(adminCtx, employee.CreateEmployeeRequest{Username: "x", Password: "1", Role: "boss"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "display_name")
}

func TestGet(t *testing.T) {
	service, _ := setupEmployeeService(t)

	me, err := service.Get(employeeCtx, "")
	require.NoError(t, err)
	assert.Equal(t, "anna", me.Username)

	_, err = service.Get(employeeCtx, "adm-1")
	assert.ErrorIs(t, err, auth.ErrAccessDenied)

	other, err := service.Get(adminCtx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", other.DisplayName)

	_, err = service.Get(adminCtx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestList(t *testing.T) {
	service, _ := setupEmployeeService(t)

	staff, err := service.List(adminCtx, employee.ListEmployeesRequest{})
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "anna", staff[0].Username)

	everyone, err := service.List(adminCtx, employee.ListEmployeesRequest{IncludeAdmins: true})
	require.NoError(t, err)
	assert.Len(t, everyone, 2)

	_, err = service.List(employeeCtx, employee.ListEmployeesRequest{})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)
}

func TestUpdate(t *testing.T) {
	service, _ := setupEmployeeService(t)
	name := "Anna Schmidt"
	title := "Developer"
	quota := 24

	updated, err := service.Update(adminCtx, employee.UpdateEmployeeRequest{
		ID:            "emp-1",
		DisplayName:   &name,
		JobTitle:      &title,
		VacationQuota: &quota,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna Schmidt", updated.DisplayName)
	assert.Equal(t, "anna", updated.Username)
	require.NotNil(t, updated.JobTitle)
	assert.Equal(t, "Developer", *updated.JobTitle)
	require.NotNil(t, updated.VacationQuota)
	assert.Equal(t, 24, *updated.VacationQuota)

	empty := ""
	cleared, err := service.Update(adminCtx, employee.UpdateEmployeeRequest{ID: "emp-1", JobTitle: &empty})
	require.NoError(t, err)
	assert.Nil(t, cleared.JobTitle)
	assert.Equal(t, "Anna Schmidt", cleared.DisplayName)

	_, err = service.Update(employeeCtx, employee.UpdateEmployeeRequest{ID: "emp-1", DisplayName: &name})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)

	_, err = service.Update(adminCtx, employee.UpdateEmployeeRequest{ID: "missing", DisplayName: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
