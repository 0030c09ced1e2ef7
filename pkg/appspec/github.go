package appspec

import (
	"strings"

	"github.com/straiforos/wickedbased/pkg/manifest"
	"github.com/straiforos/wickedbased/pkg/validation"
)

// GitHub source defaults.
const (
	defaultSourceDir      = "/"
	defaultDockerfilePath = "Dockerfile"
)

// GitHubSourceArgs is the raw input record for NewGitHubSource.
type GitHubSourceArgs struct {
	// Repo is the repository in owner/repo form.
	Repo string `json:"repo" validate:"required,github_repo"`
	// Branch is the branch to deploy from.
	Branch string `json:"branch" validate:"required,notblank"`
	// SourceDir is the build context directory. Defaults to "/".
	SourceDir string `json:"sourceDir"`
	// DockerfilePath locates the Dockerfile. Defaults to "Dockerfile".
	DockerfilePath string `json:"dockerfilePath" validate:"omitempty,notblank"`
	// DeployOnPush redeploys on new commits. Defaults to false.
	DeployOnPush bool `json:"deployOnPush"`
}

// GitHubSource is a validated build-from-repository source. Immutable once
// constructed.
type GitHubSource struct {
	repo           string
	branch         string
	sourceDir      string
	dockerfilePath string
	deployOnPush   bool
}

// NewGitHubSource validates args and builds the source, filling defaults
// for the build directory and Dockerfile location.
func NewGitHubSource(args GitHubSourceArgs) (*GitHubSource, error) {
	if err := validation.Struct(args); err != nil {
		return nil, err
	}
	g := &GitHubSource{
		repo:           args.Repo,
		branch:         strings.TrimSpace(args.Branch),
		sourceDir:      args.SourceDir,
		dockerfilePath: strings.TrimSpace(args.DockerfilePath),
		deployOnPush:   args.DeployOnPush,
	}
	if g.sourceDir == "" {
		g.sourceDir = defaultSourceDir
	}
	if g.dockerfilePath == "" {
		g.dockerfilePath = defaultDockerfilePath
	}
	return g, nil
}

// Repo returns the owner/repo reference.
func (g *GitHubSource) Repo() string {
	return g.repo
}

// Branch returns the deploy branch.
func (g *GitHubSource) Branch() string {
	return g.branch
}

// SourceDir returns the build context directory.
func (g *GitHubSource) SourceDir() string {
	return g.sourceDir
}

// DockerfilePath returns the Dockerfile location.
func (g *GitHubSource) DockerfilePath() string {
	return g.dockerfilePath
}

// DeployOnPush reports whether new commits trigger a deploy.
func (g *GitHubSource) DeployOnPush() bool {
	return g.deployOnPush
}

// JSON returns the canonical projection with defaults materialized. The
// deployOnPush flag is always included; false survives pruning like any
// other scalar.
func (g *GitHubSource) JSON() *manifest.Map {
	m := manifest.NewMap()
	m.Set("repo", g.repo)
	m.Set("branch", g.branch)
	m.Set("sourceDir", g.sourceDir)
	m.Set("dockerfilePath", g.dockerfilePath)
	m.Set("deployOnPush", g.deployOnPush)
	return m
}
