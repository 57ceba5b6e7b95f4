package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/hop/pkg/config"
)

var _ = Describe("Configer config", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	writeConfig := func(data string) {
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}

	Describe("NewConfiger", func() {
		It("targets config.toml inside the hop directory", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.GetTarget()).To(HaveSuffix(filepath.Join(filepath.Base(tmpDir), "config.toml")))
		})
	})

	Describe("LoadConfig", func() {
		It("returns default config when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.NewDefaultConfig()))
		})

		It("loads all config fields", func() {
			writeConfig(`version = 0

[database]
data_dir = "/var/lib/hop"
max_age = 500.5

[query]
exclude_dirs = ["/tmp/*", "/mnt"]
resolve_symlinks = true

[log]
debug = true
json = true
file = "/var/log/hop.log"
`)
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Database.DataDir).To(Equal("/var/lib/hop"))
			Expect(cfg.Database.MaxAge).To(Equal(500.5))
			Expect(cfg.Query.ExcludeDirs).To(Equal([]string{"/tmp/*", "/mnt"}))
			Expect(cfg.Query.ResolveSymlinks).To(BeTrue())
			Expect(cfg.Log.Debug).To(BeTrue())
			Expect(cfg.Log.JSON).To(BeTrue())
			Expect(cfg.Log.File).To(Equal("/var/log/hop.log"))
		})

		It("fills unset fields from the defaults", func() {
			writeConfig(`[database]
data_dir = "/var/lib/hop"
`)
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			defaults := config.NewDefaultConfig()
			Expect(cfg.Database.MaxAge).To(Equal(defaults.Database.MaxAge))
			Expect(cfg.Query.ExcludeDirs).To(Equal(defaults.Query.ExcludeDirs))
		})

		It("keeps an explicitly empty exclude list", func() {
			writeConfig(`[query]
exclude_dirs = []
`)
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Query.ExcludeDirs).NotTo(BeNil())
			Expect(cfg.Query.ExcludeDirs).To(BeEmpty())
		})

		It("returns error for malformed TOML", func() {
			writeConfig("this is not [valid toml")

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.LoadConfig()
			Expect(err).To(MatchError(ContainSubstring("parsing config TOML")))
		})

		It("returns error for unsupported config version", func() {
			writeConfig("version = 9\n")

			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			_, err = c.LoadConfig()
			Expect(err).To(MatchError(ContainSubstring("unsupported config version 9")))
		})
	})

	Describe("SaveConfig", func() {
		It("round-trips a config", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())

			cfg := &config.Config{
				Database: config.DatabaseConfig{DataDir: "/data", MaxAge: 42},
				Query:    config.QueryConfig{ExcludeDirs: []string{"/a", "/b/*"}, ResolveSymlinks: true},
				Log:      config.LogConfig{Debug: true, File: "/tmp/hop.log"},
			}
			Expect(c.SaveConfig(cfg)).To(Succeed())

			loaded, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("returns error for nil config", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.SaveConfig(nil)).To(MatchError("cannot save nil config"))
		})
	})

	Describe("SetConfigValue", func() {
		var c *config.Configer

		BeforeEach(func() {
			var err error
			c, err = config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
		})

		It("sets a string key", func() {
			Expect(c.SetConfigValue("database.data_dir", "/srv/hop")).To(Succeed())
			Expect(c.GetConfigValue("database.data_dir")).To(Equal("/srv/hop"))
		})

		It("sets a float key", func() {
			Expect(c.SetConfigValue("database.max_age", "2500")).To(Succeed())
			Expect(c.GetConfigValue("database.max_age")).To(Equal("2500"))
		})

		It("rejects a non-positive max age", func() {
			Expect(c.SetConfigValue("database.max_age", "0")).To(MatchError(ContainSubstring("must be positive")))
			Expect(c.SetConfigValue("database.max_age", "lots")).To(MatchError(ContainSubstring("invalid value")))
		})

		It("sets a list key from a path list", func() {
			list := "/tmp/*" + string(filepath.ListSeparator) + string(filepath.ListSeparator) + "/mnt"
			Expect(c.SetConfigValue("query.exclude_dirs", list)).To(Succeed())

			cfg, err := c.LoadConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Query.ExcludeDirs).To(Equal([]string{"/tmp/*", "/mnt"}))
		})

		It("sets bool keys", func() {
			Expect(c.SetConfigValue("query.resolve_symlinks", "true")).To(Succeed())
			Expect(c.GetConfigValue("query.resolve_symlinks")).To(Equal("true"))
			Expect(c.SetConfigValue("log.json", "maybe")).To(MatchError(ContainSubstring("invalid value for log.json")))
		})

		It("preserves existing values when setting a new key", func() {
			Expect(c.SetConfigValue("log.file", "/tmp/hop.log")).To(Succeed())
			Expect(c.SetConfigValue("log.debug", "true")).To(Succeed())
			Expect(c.GetConfigValue("log.file")).To(Equal("/tmp/hop.log"))
		})

		It("returns error for unknown key", func() {
			Expect(c.SetConfigValue("proxy.listen", ":8080")).To(MatchError(ContainSubstring("unknown config key")))
		})
	})

	Describe("GetConfigValue", func() {
		It("returns defaults when no config file exists", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.GetConfigValue("database.max_age")).To(Equal("10000"))
			Expect(c.GetConfigValue("database.data_dir")).To(BeEmpty())
		})

		It("returns error for unknown key", func() {
			c, err := config.NewConfiger(tmpDir)
			Expect(err).NotTo(HaveOccurred())
			_, err = c.GetConfigValue("nope")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ValidConfigKeys", func() {
		It("lists every key exactly once and all are valid", func() {
			keys := config.ValidConfigKeys()
			Expect(keys).To(HaveLen(7))
			for _, k := range keys {
				Expect(config.IsValidConfigKey(k)).To(BeTrue(), k)
			}
			Expect(config.IsValidConfigKey("storage.sqlite_path")).To(BeFalse())
		})
	})
})

var _ = Describe("SplitList", func() {
	It("drops blanks", func() {
		sep := string(filepath.ListSeparator)
		Expect(config.SplitList(" /a " + sep + sep + "/b")).To(Equal([]string{"/a", "/b"}))
		Expect(config.SplitList("")).To(BeEmpty())
	})
})
