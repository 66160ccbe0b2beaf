// Package gitver detects the project version from git tags so badge
// messages can carry {version}-style templates.
package gitver

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// VersionInfo holds resolved version metadata from git.
type VersionInfo struct {
	Version      string // full version: "1.2.3", "1.2.3-rc.1", "1.2.3-dev+abc1234"
	Base         string // major.minor.patch without prerelease: "1.2.3"
	Major        string
	Minor        string
	Patch        string
	Prerelease   string // "rc.1", or "" for stable
	Tag          string // nearest tag as written: "v1.2.3"
	SHA          string // abbreviated HEAD commit
	Branch       string
	CommitDate   string // HEAD author date, UTC, YYYY-MM-DD
	IsRelease    bool   // HEAD is exactly at the tag
	IsPrerelease bool
}

// DetectVersion resolves version info from the nearest semver tag reachable
// from HEAD. A repository without semver tags reports 0.0.0-dev+<sha>.
func DetectVersion(rootDir string) (*VersionInfo, error) {
	repo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting HEAD commit: %w", err)
	}

	v := &VersionInfo{
		SHA:        head.Hash().String()[:7],
		CommitDate: headCommit.Author.When.UTC().Format("2006-01-02"),
	}
	if head.Name().IsBranch() {
		v.Branch = head.Name().Short()
	}

	tags, err := semverTags(repo)
	if err != nil {
		return nil, err
	}

	// Walk history from HEAD and stop at the first tagged commit.
	var found *tagged
	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	err = iter.ForEach(func(c *object.Commit) error {
		if t, ok := tags[c.Hash]; ok {
			found = &t
			v.IsRelease = c.Hash == head.Hash()
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	if found == nil {
		v.Version = "0.0.0-dev+" + v.SHA
		v.Base, v.Major, v.Minor, v.Patch = "0.0.0", "0", "0", "0"
		return v, nil
	}

	sv := found.version
	v.Tag = found.name
	v.Major = fmt.Sprint(sv.Major())
	v.Minor = fmt.Sprint(sv.Minor())
	v.Patch = fmt.Sprint(sv.Patch())
	v.Base = fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
	v.Prerelease = sv.Prerelease()
	v.IsPrerelease = v.Prerelease != ""
	v.Version = v.Base
	if v.IsPrerelease {
		v.Version += "-" + v.Prerelease
	}
	if !v.IsRelease {
		v.Version = fmt.Sprintf("%s-dev+%s", v.Version, v.SHA)
	}
	return v, nil
}

type tagged struct {
	name    string
	version *semver.Version
}

// semverTags maps commit hashes to the highest semver tag pointing at them.
// Annotated tags are peeled to their commit; non-semver tags are ignored.
func semverTags(repo *git.Repository) (map[plumbing.Hash]tagged, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	out := make(map[plumbing.Hash]tagged)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		sv, err := semver.NewVersion(name)
		if err != nil {
			return nil
		}

		hash := ref.Hash()
		if tag, err := repo.TagObject(hash); err == nil {
			c, err := tag.Commit()
			if err != nil {
				return nil
			}
			hash = c.Hash
		} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
			return fmt.Errorf("reading tag %s: %w", name, err)
		}

		if prev, ok := out[hash]; !ok || sv.GreaterThan(prev.version) {
			out[hash] = tagged{name: name, version: sv}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
