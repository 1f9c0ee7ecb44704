package config

import (
	"net"
	"net/url"
	"strings"
)

const defaultSSLMode = "disable"

// DSN renders the key/value connection string used by the gorm driver.
func (p *PostgresConfig) DSN() string {
	return p.dsnFor(p.Host, p.Port, p.UserName, p.Password)
}

// ReplicaDSN renders the connection string for a read replica. The database
// name and sslmode are shared with the primary.
func (p *PostgresConfig) ReplicaDSN(replica ConnectionConfig) string {
	return p.dsnFor(replica.Host, replica.Port, replica.UserName, replica.Password)
}

// URL renders the postgres:// form expected by golang-migrate.
func (p *PostgresConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.UserName, p.Password),
		Host:   net.JoinHostPort(p.Host, p.portOrDefault(p.Port)),
		Path:   "/" + p.Database,
	}
	q := url.Values{}
	q.Set("sslmode", p.sslMode())
	u.RawQuery = q.Encode()

	return u.String()
}

func (p *PostgresConfig) dsnFor(host, port, user, password string) string {
	pairs := []string{
		"host=" + quoteDSNValue(host),
		"port=" + quoteDSNValue(p.portOrDefault(port)),
		"user=" + quoteDSNValue(user),
		"password=" + quoteDSNValue(password),
		"dbname=" + quoteDSNValue(p.Database),
		"sslmode=" + quoteDSNValue(p.sslMode()),
	}

	return strings.Join(pairs, " ")
}

func (p *PostgresConfig) portOrDefault(port string) string {
	if port == "" {
		return "5432"
	}

	return port
}

func (p *PostgresConfig) sslMode() string {
	if p.SSLMode == "" {
		return defaultSSLMode
	}

	return p.SSLMode
}

// quoteDSNValue follows libpq quoting: values with spaces or quotes are
// single-quoted with backslash escapes.
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)

	return "'" + escaped + "'"
}
