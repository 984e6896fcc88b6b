package config

import (
	"os"
	"strings"
	"sync"
)

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

var (
	supabaseConfig *SupabaseConfig
	supabaseOnce   sync.Once
)

func LoadSupabaseConfig() *SupabaseConfig {
	supabaseOnce.Do(func() {
		supabaseConfig = &SupabaseConfig{
			URL:     strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
			AnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		}
	})
	return supabaseConfig
}

func (c *SupabaseConfig) Enabled() bool {
	return c.URL != "" && c.AnonKey != ""
}

// RestURL is the PostgREST root of the project.
func (c *SupabaseConfig) RestURL() string {
	return c.URL + "/rest/v1"
}
