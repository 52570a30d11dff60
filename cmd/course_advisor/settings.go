package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Emynex4real/innovateam-sub003/internal/catalog"
	"github.com/Emynex4real/innovateam-sub003/internal/config"
	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/similarity"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/spf13/cobra"
)

// loadSettings resolves the config file, then ADVISOR_* variables, then any
// flags that were set explicitly, and fills the rest from defaults.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog = rootCatalogPath
	}
	if flags.Changed("peers") {
		cfg.Peers = rootPeersPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadEngine returns the catalog and reference population named by cfg,
// falling back to the built-in data.
func loadEngine(cfg config.Config) (*catalog.Catalog, []types.Peer, error) {
	cat := catalog.MustLoad()
	if cfg.Catalog != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}

	peers := similarity.DefaultPeers()
	if cfg.Peers != "" {
		loaded, err := similarity.LoadPeers(cfg.Peers)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load peers: %w", err)
		}
		peers = loaded
	}

	return cat, peers, nil
}

// readProfile loads a StudentProfile JSON file and checks it against the schema.
func readProfile(path string) (*types.StudentProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	return decodeProfile(content)
}

func decodeProfile(content []byte) (*types.StudentProfile, error) {
	profile, err := ranking.DecodeProfile(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile, nil
}

// writeOutput writes data to path, creating parent directories. An empty
// path writes to the command's stdout.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
