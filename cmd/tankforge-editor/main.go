package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/forgelight-studio/tankforge/level"
	"github.com/forgelight-studio/tankforge/tile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "tankforge-editor",
		Short: "Level editor for tankforge maps",
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "editor config file")

	edit := &cobra.Command{
		Use:   "edit [map.json]",
		Short: "Open a map for editing, creating it if missing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(configPath)
			path := cfg.LastFile
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = "untitled.json"
			}
			return runEditor(cfg, configPath, path)
		},
	}

	var size int
	var name string
	newCmd := &cobra.Command{
		Use:   "new <map.json>",
		Short: "Create a blank map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			m, err := level.New(name, size, size)
			if err != nil {
				return err
			}
			if err := level.Save(m, args[0]); err != nil {
				return err
			}
			log.Printf("created %s (%dx%d)", args[0], size, size)
			return nil
		},
	}
	newCmd.Flags().IntVar(&size, "size", 10, "map side length in tiles")
	newCmd.Flags().StringVar(&name, "name", "", "map name")

	root.AddCommand(edit, newCmd)
	return root
}

func runEditor(cfg Config, configPath, mapPath string) error {
	tiles, err := loadTiles(cfg)
	if err != nil {
		return err
	}

	g, err := newGame(cfg, tiles)
	if err != nil {
		return err
	}
	g.configPath = configPath
	defer g.close()

	if err := g.session.EnterPath(mapPath); err != nil {
		return err
	}
	g.session.SetAutoSave(cfg.AutoSave)

	cfg.LastFile = mapPath
	saveConfig(configPath, cfg)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("tankforge editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func loadTiles(cfg Config) (*tile.Registry, error) {
	if cfg.TileCatalog == "" {
		return tile.Default()
	}
	reg, err := tile.Load(cfg.TileCatalog)
	if err != nil {
		log.Printf("tile catalog %s: %v, falling back to built-ins", cfg.TileCatalog, err)
		return tile.Default()
	}
	return reg, nil
}
