// testmaster-admin - Local tooling for the TestMaster landing service
// Issues development tokens and renders the landing page without a server

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/k3a/html2text"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/config"
	"github.com/testmaster-app/testmaster/logging"
	"github.com/testmaster-app/testmaster/monitoring"
	"github.com/testmaster-app/testmaster/page"
	"github.com/testmaster-app/testmaster/registry"
	"github.com/testmaster-app/testmaster/utils"
	"github.com/testmaster-app/testmaster/view"
)

const (
	Version = "1.0.0"
	Usage   = `testmaster-admin - Local tooling for the TestMaster landing service

USAGE:
    testmaster-admin [global options] command [command options]

COMMANDS:
    token             Issue a signed token for a user (development)
    render            Render the landing page to stdout
    health-check      Run the service health checks locally
    version           Show version information

GLOBAL OPTIONS:
    --verbose, -v       Verbose output
    --help, -h          Show help

EXAMPLES:
    testmaster-admin token --email ada@example.com --name "Ada Lovelace"
    testmaster-admin render --name "Ada Lovelace" --mounted > page.html
    testmaster-admin render --registry > /dev/null
`
)

var verbose bool

func main() {
	var (
		verboseFlag = flag.Bool("verbose", false, "Verbose output")
		vFlag       = flag.Bool("v", false, "Verbose output (short)")
		helpFlag    = flag.Bool("help", false, "Show help information")
		hFlag       = flag.Bool("h", false, "Show help information (short)")
		versionFlag = flag.Bool("version", false, "Show version information")
	)

	flag.Parse()

	verbose = *verboseFlag || *vFlag
	if !verbose {
		logging.SetOutput(io.Discard, logging.ERROR)
	}

	if *versionFlag {
		printVersion()
		return
	}

	if *helpFlag || *hFlag || flag.NArg() == 0 {
		printUsage()
		return
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	var err error
	switch command {
	case "token":
		err = handleTokenCommand(args, os.Stdout)
	case "render":
		err = handleRenderCommand(args, os.Stdout, os.Stderr)
	case "health-check":
		err = handleHealthCheckCommand(args, os.Stdout)
	case "version":
		printVersion()
	case "help":
		printUsage()
	default:
		logError("Unknown command: %s", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logError("%s failed: %v", command, err)
		os.Exit(1)
	}
}

// handleTokenCommand issues a token signed with the configured secret
func handleTokenCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	var (
		emailFlag = fs.String("email", "", "User email (required)")
		nameFlag  = fs.String("name", "", "Display name shown in the greeting")
	)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: testmaster-admin token [FLAGS]

Issue a signed token that the landing page accepts as an
Authorization bearer token or "token" cookie.

FLAGS:
    --email EMAIL       User email (required)
    --name NAME         Display name shown in the greeting
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *emailFlag == "" {
		return fmt.Errorf("email is required")
	}
	if err := utils.ValidateDisplayName(*nameFlag); err != nil {
		return err
	}

	if _, err := config.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	token, err := auth.GenerateToken(*emailFlag, *nameFlag)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	logVerbose("Issued token for %s", *emailFlag)
	_, err = fmt.Fprintln(out, token)
	return err
}

// handleRenderCommand writes the landing page HTML
func handleRenderCommand(args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var (
		nameFlag     = fs.String("name", "", "Render as a signed-in user with this display name")
		mountedFlag  = fs.Bool("mounted", false, "Render the state after the mount transition")
		fragmentFlag = fs.Bool("fragment", false, "Render only the page body")
		registryFlag = fs.Bool("registry", false, "Print registry entries as JSON to stderr")
		textFlag     = fs.Bool("text", false, "Print the page as plain text")
	)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: testmaster-admin render [FLAGS]

Render the landing page to stdout.

FLAGS:
    --name NAME         Render as a signed-in user with this display name
    --mounted           Render the state after the mount transition
    --fragment          Render only the page body
    --registry          Print registry entries as JSON to stderr
    --text              Print the page as plain text
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	state := auth.Anonymous
	if *nameFlag != "" {
		state = auth.SignedIn(utils.SanitizeDisplayName(*nameFlag))
	}

	var reg *registry.Registry
	if *registryFlag {
		reg = registry.New()
	}

	l := page.New(auth.Static(state), page.WithRegistry(reg))
	tree := l.Render()
	if *mountedFlag {
		var q page.Queue
		l.Mount(&q)
		q.RunPending()
		tree = l.Render()
	}
	logVerbose("Rendering %s page (mounted=%t)", variantName(state), l.Mounted())

	switch {
	case *textFlag:
		body, err := view.RenderString(tree)
		if err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		if _, err := fmt.Fprintln(out, html2text.HTML2Text(body)); err != nil {
			return err
		}
	case *fragmentFlag:
		if err := view.Render(out, tree); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
	default:
		props := view.DocumentProps{
			Title:       "TestMaster - Smart Testing Platform",
			Stylesheets: []string{"/static/landing.css"},
			Scripts:     []string{"/static/mount.js"},
		}
		if cfg, err := config.LoadConfig(); err == nil {
			props.Title = cfg.Site.Title
			props.Description = cfg.Site.Description
		} else {
			logVerbose("Using default document properties: %v", err)
		}
		if err := view.RenderDocument(out, props, tree); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
	}

	if reg != nil {
		enc := json.NewEncoder(errOut)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reg.Entries()); err != nil {
			return fmt.Errorf("failed to encode registry: %w", err)
		}
	}
	return nil
}

// handleHealthCheckCommand runs the health checks in-process
func handleHealthCheckCommand(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("health-check", flag.ContinueOnError)
	detailed := fs.Bool("detailed", false, "Print every check")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	status := monitoring.NewHealthMonitor(cfg, Version).GetHealthStatus()
	writeHealthStatus(out, status, *detailed)

	if status.Status == monitoring.StatusUnhealthy {
		return fmt.Errorf("service is unhealthy")
	}
	return nil
}

// writeHealthStatus prints the summary line and, if detailed, one line per
// check ordered by name.
func writeHealthStatus(out io.Writer, status monitoring.HealthResponse, detailed bool) {
	fmt.Fprintf(out, "Status: %s (%d/%d checks healthy)\n", status.Status, status.Summary.Healthy, status.Summary.Total)
	if !detailed {
		return
	}

	names := make([]string, 0, len(status.Checks))
	for name := range status.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		check := status.Checks[name]
		fmt.Fprintf(out, "  %-10s %-10s %s\n", name, check.Status, check.Message)
	}
}

func variantName(state auth.State) string {
	if state.IsAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

func printUsage() {
	fmt.Print(Usage)
}

func printVersion() {
	fmt.Printf("testmaster-admin version %s\n", Version)
}

func logVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
