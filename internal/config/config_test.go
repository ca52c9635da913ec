package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newBound(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(v, fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDefaults(t *testing.T) {
	c, err := New(newBound(t))
	if err != nil {
		t.Fatal(err)
	}
	if c.Mode != "prod" || c.IsDev() {
		t.Errorf("mode = %q", c.Mode)
	}
	if c.ListenAddr() != "127.0.0.1:8642" {
		t.Errorf("listen addr = %q", c.ListenAddr())
	}
	if c.DBPath == "" {
		t.Error("empty default db path")
	}
}

func TestFlagsOverrideDefaults(t *testing.T) {
	c, err := New(newBound(t, "--mode=dev", "--port=9000", "--db=/tmp/kanado-test.db"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsDev() {
		t.Error("dev mode not picked up")
	}
	if c.Port != 9000 || c.DBPath != "/tmp/kanado-test.db" {
		t.Errorf("config = %+v", c)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("KANADO_PORT", "7777")
	t.Setenv("KANADO_MODE", "dev")
	c, err := New(newBound(t))
	if err != nil {
		t.Fatal(err)
	}
	if c.Port != 7777 || c.Mode != "dev" {
		t.Errorf("config = %+v", c)
	}
}

func TestRejectsBadValues(t *testing.T) {
	if _, err := New(newBound(t, "--mode=staging")); err == nil {
		t.Error("bad mode accepted")
	}
	if _, err := New(newBound(t, "--port=0")); err == nil {
		t.Error("bad port accepted")
	}
}
