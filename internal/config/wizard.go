package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to karaty.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to karaty! Let's configure your site.")
	fmt.Println()

	// Default the site name to the working directory name.
	defaultName := "My Site"
	if wd, err := os.Getwd(); err == nil && filepath.Base(wd) != "." {
		defaultName = filepath.Base(wd)
	}

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: defaultName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Hosting service for the site repository.
	servicePrompt := promptui.Select{
		Label: "Select git hosting service",
		Items: []string{"github", "gitee"},
	}
	_, service, err := servicePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("service selection: %w", err)
	}

	// 3. Repository and branch.
	repoPrompt := promptui.Prompt{
		Label: "Site repository (owner/repo)",
	}
	repoName, err := repoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("repository name: %w", err)
	}

	branchPrompt := promptui.Prompt{
		Label:   "Branch",
		Default: "main",
	}
	branch, err := branchPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("branch: %w", err)
	}

	// 4. Sourcing mode.
	modePrompt := promptui.Select{
		Label: "Where does the page content live",
		Items: []string{
			"sub-path               — a folder inside the site repository",
			"independent-repository — a separate content repository",
		},
	}
	modeIdx, _, err := modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("mode selection: %w", err)
	}

	source := DataSource{}
	switch modeIdx {
	case 0:
		source.Mode = ModeSubPath
		folderPrompt := promptui.Prompt{
			Label:   "Content sub-folder",
			Default: "docs",
		}
		folder, err := folderPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content sub-folder: %w", err)
		}
		source.Data = folder
	case 1:
		source.Mode = ModeIndependentRepository
		contentRepoPrompt := promptui.Prompt{
			Label: "Content repository (owner/repo)",
		}
		contentRepo, err := contentRepoPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content repository: %w", err)
		}
		contentBranchPrompt := promptui.Prompt{
			Label:   "Content branch",
			Default: "main",
		}
		contentBranch, err := contentBranchPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content branch: %w", err)
		}
		source.Data = map[string]any{
			"service": service,
			"name":    contentRepo,
			"branch":  contentBranch,
		}
	}

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: "dist",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Site.Name = siteName
	cfg.Repository = Repository{Service: service, Name: repoName, Branch: branch}
	cfg.DataSource = source
	cfg.OutputDir = outputDir
	cfg.Navigation = Navigation{
		List: []NavLink{{Display: "Home", Link: "/", Target: "_self"}},
	}

	configPath := "karaty.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
