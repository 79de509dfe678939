package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "positive memory",
			args: []string{"--store", "memory", "--token-secret", "s3cret"},
		},
		{
			name: "positive sqlite",
			args: []string{"--store", "sqlite", "--database-path", "/tmp/pg.db", "--token-secret", "s3cret"},
		},
		{
			name:    "incorrect store",
			args:    []string{"--store", "qwe", "--token-secret", "s3cret"},
			wantErr: true,
		},
		{
			name:    "sqlite without database path",
			args:    []string{"--store", "sqlite", "--token-secret", "s3cret"},
			wantErr: true,
		},
		{
			name:    "missing token secret",
			args:    []string{"--store", "memory"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			f := pflag.NewFlagSet("test", pflag.ContinueOnError)
			f.String(store, "", "")
			f.String(databasePath, "", "")
			f.String(tokenSecret, "", "")

			err := f.Parse(tt.args)
			g.Expect(err).ToNot(HaveOccurred())

			got, err := NewConfig(viper.New(), f)
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
			} else {
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(got).ToNot(BeNil())
			}
		})
	}
}

func TestConfigViper(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String(listen, "", "")
	f.Int64(defaultRequestLimit, 15000, "")
	err := f.Parse([]string{"--listen=:1234"})
	g.Expect(err).ToNot(HaveOccurred())

	genLineage = func() string {
		return "155"
	}

	v := viper.New()
	v.Set(store, "sqlite")
	v.Set(databasePath, "/var/lib/pg/quota.db")
	v.Set(tokenSecret, "s3cret")
	v.Set(tokenTTL, "30m")
	v.Set(defaultConcurrencyCap, 2)
	v.Set(adminEmails, []string{"Root@Example.com", " ", "ops@example.com"})
	v.Set(adminEndpoints, true)
	v.Set(allowIdentityFallback, true)
	v.Set(modelsURI, "models.yaml")
	v.Set(upstreamURL, "http://upstream:9000")
	v.Set(connectTimeout, 5*time.Second)
	v.Set(generateTimeout, "2m")
	v.Set(shutdownTimeout, 15*time.Second)

	t.Setenv("PG_DEFAULT_REQUEST_LIMIT", "500")
	t.Setenv("GOOGLE_API_KEY", "key-from-env")

	cfg, err := NewConfig(v, f)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(cfg.Listen()).To(Equal(":1234"))
	g.Expect(cfg.Lineage()).To(Equal("155"))
	g.Expect(cfg.Store()).To(Equal(StoreSQLite))
	g.Expect(cfg.DatabasePath()).To(Equal("/var/lib/pg/quota.db"))
	g.Expect(cfg.DefaultRequestLimit()).To(Equal(int64(500)))
	g.Expect(cfg.DefaultConcurrencyCap()).To(Equal(int64(2)))
	g.Expect(cfg.TokenSecret()).To(Equal("s3cret"))
	g.Expect(cfg.TokenTTL()).To(Equal(30 * time.Minute))
	g.Expect(cfg.AdminEmails()).To(Equal([]string{"root@example.com", "ops@example.com"}))
	g.Expect(cfg.AdminEndpoints()).To(BeTrue())
	g.Expect(cfg.AllowIdentityFallback()).To(BeTrue())
	g.Expect(cfg.ModelsURI()).To(Equal("models.yaml"))
	g.Expect(cfg.UpstreamURL()).To(Equal("http://upstream:9000"))
	g.Expect(cfg.UpstreamAPIKey()).To(Equal("key-from-env"))
	g.Expect(cfg.ConnectTimeout()).To(Equal(5 * time.Second))
	g.Expect(cfg.GenerateTimeout()).To(Equal(2 * time.Minute))
	g.Expect(cfg.ShutdownTimeout()).To(Equal(15 * time.Second))
}
