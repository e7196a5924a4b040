package db

import (
	"testing"

	"github.com/pedalmarket/backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	cases := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "db.internal", "app:pw@tcp(db.internal:3306)/bikes?charset=utf8mb4&parseTime=True&loc=Local"},
		{"tcp wrapped", "tcp(db.internal:3307)", "app:pw@tcp(db.internal:3307)/bikes?charset=utf8mb4&parseTime=True&loc=Local"},
		{"unix wrapped", "unix(/tmp/mysql.sock)", "app:pw@unix(/tmp/mysql.sock)/bikes?charset=utf8mb4&parseTime=True&loc=Local"},
		{"socket path", "/var/run/mysqld/mysqld.sock", "app:pw@unix(/var/run/mysqld/mysqld.sock)/bikes?charset=utf8mb4&parseTime=True&loc=Local"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				DBUser:     "app",
				DBPassword: "pw",
				DBHost:     tc.host,
				DBName:     "bikes",
				DBPort:     "3306",
			}
			assert.Equal(t, tc.want, BuildDSN(cfg))
		})
	}
}
