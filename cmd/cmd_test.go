package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

var _ = Describe("loadConfig", func() {
	It("falls back to defaults without a config file", func() {
		cfg, err := loadConfig(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(internal.DefaultConfig()))
	})

	It("overlays config.yml on the defaults", func() {
		dir := GinkgoT().TempDir()
		yml := []byte("http_server:\n  port: 9191\nstorage:\n  driver: sqlite\n")
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600)).To(Succeed())

		cfg, err := loadConfig(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.Port).To(Equal(9191))
		Expect(cfg.Storage.Driver).To(Equal(internal.StorageDriverSQLite))
		Expect(cfg.Storage.SQLiteDSN).To(Equal("file::memory:"))
	})

	It("rejects an invalid config.yml", func() {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "config.yml"), []byte("storage:\n  driver: mongo\n"), 0o600)).To(Succeed())

		_, err := loadConfig(dir)
		Expect(err).To(MatchError(ContainSubstring("unknown storage driver")))
	})
})

var _ = Describe("storage", func() {
	for _, driver := range []string{internal.StorageDriverMemory, internal.StorageDriverSQLite} {
		driver := driver
		It("opens an empty repository per mount for "+driver, func() {
			ctx := context.Background()
			opener, check, err := storage(internal.StorageConfig{Driver: driver, SQLiteDSN: "file::memory:"})
			Expect(err).NotTo(HaveOccurred())
			Expect(check(ctx)).To(Succeed())

			first, release, err := opener(ctx)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(release)
			Expect(first.Prepend(ctx, &worker.Worker{ID: 1, Name: "Jane Roe", Role: "Driver", Status: worker.StatusActive})).To(Succeed())

			second, releaseSecond, err := opener(ctx)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(releaseSecond)
			all, err := second.All(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})
	}

	It("rejects unknown drivers", func() {
		_, _, err := storage(internal.StorageConfig{Driver: "redis"})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("seed command", func() {
	It("prints one fixture set", func() {
		var out bytes.Buffer
		seedCmd.SetOut(&out)
		seedSet = "workers"
		DeferCleanup(func() { seedSet = "" })

		Expect(seedCmd.RunE(seedCmd, nil)).To(Succeed())

		var workers []worker.Worker
		Expect(json.Unmarshal(out.Bytes(), &workers)).To(Succeed())
		Expect(workers).To(HaveLen(5))
		Expect(workers[0].ID).To(Equal(int64(4)))
	})
})
