package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

func TestRoleNames(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		want []string
	}{
		{
			name: "flat shape",
			yml: `
username: alice
email: alice@example.com
roles: [Admin, Editor]
`,
			want: []string{"Admin", "Editor"},
		},
		{
			name: "nested shape",
			yml: `
username: bob
email: bob@example.com
userRoles:
  - role:
      roleName: Admin
  - role:
      roleName: Viewer
`,
			want: []string{"Admin", "Viewer"},
		},
		{
			name: "both shapes deduplicated",
			yml: `
username: carol
email: carol@example.com
roles: [Admin]
userRoles:
  - role:
      roleName: Admin
  - role:
      roleName: Editor
`,
			want: []string{"Admin", "Editor"},
		},
		{
			name: "missing and empty fields skipped",
			yml: `
username: dave
email: dave@example.com
roles: ["", "  "]
userRoles:
  - role: {}
`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user UserFixture
			if err := yaml.Unmarshal([]byte(tt.yml), &user); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := user.RoleNames()
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("RoleNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeedIdempotent(t *testing.T) {
	ctx := context.Background()

	database, err := Connect(ctx, "sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = Close(database) })

	if err := Migrate(ctx, database); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	fixture := Fixture{
		Roles: []string{"Admin"},
		Users: []UserFixture{
			{Username: "alice", Email: "alice@example.com", Roles: []string{"Admin"}},
			{
				Username: "bob",
				Email:    "bob@example.com",
				UserRoles: []assignmentFixture{
					{Role: roleFixture{Name: "Editor"}},
				},
			},
		},
	}

	for range 2 {
		if err := Seed(ctx, database, fixture); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	var roleCount, userCount, assignmentCount int64
	database.Model(&models.Role{}).Count(&roleCount)
	database.Model(&models.User{}).Count(&userCount)
	database.Model(&models.UserRole{}).Count(&assignmentCount)

	if roleCount != 2 {
		t.Errorf("roles = %d, want 2 (Admin plus implicit Editor)", roleCount)
	}
	if userCount != 2 {
		t.Errorf("users = %d, want 2", userCount)
	}
	if assignmentCount != 2 {
		t.Errorf("assignments = %d, want 2", assignmentCount)
	}
}

func TestSeedRejectsInvalidFixture(t *testing.T) {
	tests := []struct {
		name    string
		fixture Fixture
	}{
		{
			name:    "role name too short",
			fixture: Fixture{Roles: []string{"A"}},
		},
		{
			name: "role name blank after trim",
			fixture: Fixture{
				Users: []UserFixture{{Username: "alice", Email: "alice@example.com", Roles: []string{"Admin"}}},
				Roles: []string{"  "},
			},
		},
		{
			name: "user with invalid email",
			fixture: Fixture{
				Roles: []string{"Admin"},
				Users: []UserFixture{{Username: "x", Email: "not-an-email"}},
			},
		},
		{
			name: "user with short username",
			fixture: Fixture{
				Users: []UserFixture{{Username: "x", Email: "x@example.com"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			database, err := Connect(ctx, "sqlite", "file::memory:")
			if err != nil {
				t.Fatalf("connect: %v", err)
			}
			t.Cleanup(func() { _ = Close(database) })

			if err := Migrate(ctx, database); err != nil {
				t.Fatalf("migrate: %v", err)
			}

			err = Seed(ctx, database, tt.fixture)
			var violation *models.FieldViolation
			if !errors.As(err, &violation) {
				t.Fatalf("Seed error = %v, want FieldViolation", err)
			}

			// A rejected fixture must leave storage untouched.
			var roleCount, userCount int64
			database.Model(&models.Role{}).Count(&roleCount)
			database.Model(&models.User{}).Count(&userCount)
			if roleCount != 0 || userCount != 0 {
				t.Fatalf("rejected fixture stored %d roles and %d users", roleCount, userCount)
			}
		})
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
roles:
  - Admin
users:
  - username: alice
    email: alice@example.com
    roles: [Admin]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fixture, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(fixture.Roles) != 1 || fixture.Roles[0] != "Admin" {
		t.Fatalf("roles = %v", fixture.Roles)
	}
	if len(fixture.Users) != 1 || fixture.Users[0].Username != "alice" {
		t.Fatalf("users = %+v", fixture.Users)
	}

	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadFixture on a missing file should fail")
	}
}
