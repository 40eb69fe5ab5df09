package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_OnlyMigrationAllowsMultiStatements(t *testing.T) {
	env := Env{DBUser: "wv", DBPassword: "pw", DBHost: "db:3306", DBName: "wildlife_booking"}

	dsn := env.DSN()
	assert.Contains(t, dsn, "parseTime=true")
	assert.False(t, strings.Contains(dsn, "multiStatements"), dsn)

	migration := env.MigrationDSN()
	assert.Contains(t, migration, "multiStatements=true")
	assert.Contains(t, migration, "wv:pw@tcp(db:3306)/wildlife_booking")
}

func TestCheckSecrets(t *testing.T) {
	cases := []struct {
		name    string
		env     Env
		wantErr bool
	}{
		{"placeholders in debug", Env{SessionSecret: defaultSessionSecret, JWTSecret: defaultJWTSecret}, false},
		{"placeholders in release", Env{GinMode: "release", SessionSecret: defaultSessionSecret, JWTSecret: "real"}, true},
		{"custom in release", Env{GinMode: "release", SessionSecret: "s", JWTSecret: "j"}, false},
		{"empty jwt secret", Env{GinMode: "debug", SessionSecret: "s"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.env.CheckSecrets()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
