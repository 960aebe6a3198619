package internal_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/manager-dashboard/internal"
)

func setenv(key, value string) {
	prev, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

var _ = Describe("Config", func() {
	It("accepts the defaults", func() {
		Expect(internal.DefaultConfig().Validate()).To(Succeed())
	})

	It("reads nested values from the environment", func() {
		setenv("HTTP_SERVER_PORT", "9090")
		setenv("HTTP_SERVER_SHUTDOWN_TIMEOUT", "3s")
		setenv("STORAGE_DRIVER", "sqlite")

		cfg, err := internal.LoadConfigFromEnv()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.Port).To(Equal(9090))
		Expect(cfg.Server.ShutdownTimeout).To(Equal(3 * time.Second))
		Expect(cfg.Storage.Driver).To(Equal(internal.StorageDriverSQLite))
		Expect(cfg.Storage.SQLiteDSN).To(Equal("file::memory:"))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("rejects a sqlite file on disk", func() {
		cfg := internal.DefaultConfig()
		cfg.Storage.Driver = internal.StorageDriverSQLite
		cfg.Storage.SQLiteDSN = "workers.db"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("in-memory")))
	})

	It("collects every invalid section", func() {
		cfg := internal.DefaultConfig()
		cfg.Server.Port = 0
		cfg.Storage.Driver = "postgres"
		cfg.Observability.Logging.Level = "loud"

		err := cfg.Validate()
		Expect(err).To(MatchError(ContainSubstring("server config")))
		Expect(err).To(MatchError(ContainSubstring("storage config")))
		Expect(err).To(MatchError(ContainSubstring("observability config")))
	})
})
