package internal

import "testing"

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	ok := HTTPConfig{Port: 8080}
	if err := ok.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
}

func TestPostsConfig_DirRequired(t *testing.T) {
	cfg := PostsConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty posts dir should fail validation")
	}
}

func TestSQLiteConfig_PathRequired(t *testing.T) {
	cfg := SQLiteConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty sqlite path should fail validation")
	}
}

func TestSiteConfig_TitleAndBaseURLRequired(t *testing.T) {
	cfg := SiteConfig{Title: "", BaseURL: "http://localhost"}
	if err := cfg.Validate(); err == nil {
		t.Error("empty title should fail validation")
	}
	cfg = SiteConfig{Title: "Blog", BaseURL: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("empty base_url should fail validation")
	}
}

func TestFullConfig_SiteValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Site.Title = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch site error")
	}
}
