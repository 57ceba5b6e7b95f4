package configcmder_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	configcmder "github.com/papercomputeco/hop/cmd/hop/config"
	"github.com/papercomputeco/hop/pkg/dotdir"
)

var _ = Describe("NewConfigCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := configcmder.NewConfigCmd()
		Expect(cmd.Use).To(Equal("config"))
	})

	It("has set, get, and list subcommands", func() {
		cmd := configcmder.NewConfigCmd()
		cmds := cmd.Commands()
		subcommands := make([]string, 0, len(cmds))
		for _, sub := range cmds {
			subcommands = append(subcommands, sub.Name())
		}
		Expect(subcommands).To(ContainElements("set", "get", "list"))
	})
})

var _ = Describe("Config command execution", func() {
	var (
		tmpDir  string
		origDir string
		hadDir  bool
	)

	execute := func(args ...string) (string, error) {
		cmd := configcmder.NewConfigCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "hop-config-test-*")
		Expect(err).NotTo(HaveOccurred())

		// The subcommands have no --config-dir outside the root command, so
		// point the manager at the temp dir through the environment.
		origDir, hadDir = os.LookupEnv(dotdir.EnvDir)
		Expect(os.Setenv(dotdir.EnvDir, tmpDir)).To(Succeed())
	})

	AfterEach(func() {
		if hadDir {
			Expect(os.Setenv(dotdir.EnvDir, origDir)).To(Succeed())
		} else {
			Expect(os.Unsetenv(dotdir.EnvDir)).To(Succeed())
		}
		os.RemoveAll(tmpDir)
	})

	Describe("set subcommand", func() {
		It("sets a config value successfully", func() {
			out, err := execute("set", "database.max_age", "5000")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("database.max_age"))

			data, err := os.ReadFile(filepath.Join(tmpDir, "config.toml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("max_age = 5000.0"))
		})

		It("rejects unknown keys", func() {
			_, err := execute("set", "invalid_key", "value")
			Expect(err).To(MatchError(ContainSubstring("unknown config key")))
		})

		It("requires exactly two arguments", func() {
			_, err := execute("set", "database.max_age")
			Expect(err).To(HaveOccurred())
		})

		It("rejects zero arguments", func() {
			_, err := execute("set")
			Expect(err).To(HaveOccurred())
		})

		It("rejects invalid numbers", func() {
			_, err := execute("set", "database.max_age", "not-a-number")
			Expect(err).To(HaveOccurred())
		})

		It("rejects invalid booleans", func() {
			_, err := execute("set", "query.resolve_symlinks", "maybe")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("get subcommand", func() {
		It("gets a previously set value", func() {
			_, err := execute("set", "log.file", "/var/log/hop.log")
			Expect(err).NotTo(HaveOccurred())

			out, err := execute("get", "log.file")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("/var/log/hop.log"))
		})

		It("shows unset keys", func() {
			out, err := execute("get", "log.file")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("<not set>"))
		})

		It("rejects unknown keys", func() {
			_, err := execute("get", "invalid_key")
			Expect(err).To(HaveOccurred())
		})

		It("requires exactly one argument", func() {
			_, err := execute("get")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("list subcommand", func() {
		It("lists every key with defaults filled in", func() {
			out, err := execute("list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`database.max_age       = "10000"`))
			Expect(out).To(ContainSubstring("log.file               = <not set>"))
		})

		It("rejects any arguments", func() {
			_, err := execute("list", "extra")
			Expect(err).To(HaveOccurred())
		})
	})
})
