package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Jordan466/OptionRecords/option"
	"github.com/Jordan466/OptionRecords/option/async"
	"github.com/Jordan466/OptionRecords/promise"
	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v45/github"
)

// Version is set at compile time
var Version = ""

const (
	Owner = "Jordan466"
	Repo  = "OptionRecords"
)

// PrintUsage prints how nullscan should be run
func PrintUsage() {
	executableName := os.Args[0]

	fmt.Printf("\nnullscan version %s\n\n", Version)
	fmt.Printf("Try running %s like:\n", executableName)
	fmt.Printf("%s <database> <table>. For example:\n", executableName)
	fmt.Printf("%s app.db users\n", executableName)
	fmt.Printf("\n[optional flags]\n")

	fs, _ := newFlagSet()
	fs.VisitAll(func(f *flag.Flag) {
		flagName := f.Name
		if len(f.Name) > 1 {
			flagName = "-" + flagName
		}

		fmt.Printf("  -%s : %s\n", flagName, f.Usage)
	})
}

// PrintVersion displays the version
func PrintVersion() {
	fmt.Printf("nullscan version %s\n", Version)
}

var errNoTag = errors.New("latest release has no tag")

// latestVersion fetches the latest release and parses its tag. Nothing is
// requested until the returned promise is awaited.
func latestVersion(client *github.Client) *promise.Promise[option.Option[*semver.Version]] {
	release := promise.Lazy(func(ctx context.Context) (*github.RepositoryRelease, error) {
		// unauthenticated requests from the same IP are limited to 60 per hour
		r, _, err := client.Repositories.GetLatestRelease(ctx, Owner, Repo)
		return r, err
	})

	tag := async.Bind(async.OfNullable(release), async.Pure(func(r github.RepositoryRelease) option.Option[string] {
		return option.Filter(option.OfNullable(r.TagName), func(s string) bool { return s != "" })
	}))

	return async.Map(tag, func(_ context.Context, name string) (*semver.Version, error) {
		v, err := semver.NewVersion(name)
		if err != nil {
			return nil, fmt.Errorf("version name does not match expected format: %s", name)
		}
		return v, nil
	})
}

// CheckForUpdates checks for newer versions of nullscan and returns update message
func CheckForUpdates(ctx context.Context, client *github.Client) (string, error) {
	current, err := semver.NewVersion(Version)
	if err != nil {
		return "", fmt.Errorf("current version %q is not a release version", Version)
	}

	latest, err := async.GetOrError(latestVersion(client), func() error { return errNoTag }).Await(ctx)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}

	switch latest.Compare(current) {
	case 1:
		return fmt.Sprintf("Found newer version %s\nPlease update nullscan from the URL below:\nhttps://github.com/%s/%s/releases/tag/%s",
			latest, Owner, Repo, latest.Original()), nil
	case -1:
		return fmt.Sprintf("Current version %s is newer than the latest release %s",
			current, latest), nil
	default:
		return fmt.Sprintf("nullscan is on the latest version: %s", current), nil
	}
}
