package internal_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-insights/internal"
)

func validConfig() *internal.Config {
	return &internal.Config{
		Server: internal.ServerConfig{
			Port:              8080,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
		},
		Security: internal.SecurityConfig{
			JWTSecret: strings.Repeat("s", 32),
			TokenTTL:  720 * time.Hour,
		},
		LLM: internal.LLMConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-3.5-turbo",
		},
		Observability: internal.ObservabilityConfig{
			Logging: internal.LoggingConfig{Level: "info", Format: "json"},
		},
	}
}

var _ = Describe("Config", func() {
	It("should accept a complete configuration", func() {
		Expect(validConfig().Validate()).To(Succeed())
	})

	It("should fail fast when the JWT secret is missing", func() {
		cfg := validConfig()
		cfg.Security.JWTSecret = ""

		err := cfg.Validate()

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("jwt_secret is required"))
	})

	It("should reject a short JWT secret", func() {
		cfg := validConfig()
		cfg.Security.JWTSecret = "your-secret-key"

		Expect(cfg.Validate()).To(MatchError(ContainSubstring("at least 32 characters")))
	})

	It("should ignore the database section when no source is set", func() {
		cfg := validConfig()
		cfg.Database.Driver = "mysql"

		Expect(cfg.Validate()).To(Succeed())
	})

	It("should reject unknown database drivers", func() {
		cfg := validConfig()
		cfg.Database = internal.DatabaseConfig{Driver: "mysql", Source: "x", MaxOpenConns: 1, MaxIdleConns: 1}

		Expect(cfg.Validate()).To(MatchError(ContainSubstring("unsupported driver")))
	})

	It("should require a query timeout once a store is configured", func() {
		cfg := validConfig()
		cfg.Database = internal.DatabaseConfig{Driver: "sqlite", Source: "file::memory:", MaxOpenConns: 1, MaxIdleConns: 1}

		Expect(cfg.Validate()).To(MatchError(ContainSubstring("query_timeout must be positive")))

		cfg.Database.QueryTimeout = 5 * time.Second
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should collect errors from several sections", func() {
		cfg := validConfig()
		cfg.LLM.Model = ""
		cfg.Observability.Logging.Format = "xml"

		err := cfg.Validate()

		Expect(err).To(MatchError(ContainSubstring("llm config")))
		Expect(err).To(MatchError(ContainSubstring("logging config")))
	})
})
