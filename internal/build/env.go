// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package build

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// GitCommitFlag overrides git commit hash embedded into executables
	GitCommitFlag = flag.String("git-commit", "", `Overrides git commit hash embedded into executables`)
	// GitBranchFlag overrides git branch being built
	GitBranchFlag = flag.String("git-branch", "", `Overrides git branch being built`)
	// GitTagFlag overrides git tag being built
	GitTagFlag = flag.String("git-tag", "", `Overrides git tag being built`)
)

// Environment contains metadata provided by the build environment.
type Environment struct {
	Name                      string // name of the environment
	Commit, Date, Branch, Tag string // Git info
}

func (env *Environment) String() string {
	return fmt.Sprintf("%s env (commit:%s date:%s branch:%s tag:%s)",
		env.Name, env.Commit, env.Date, env.Branch, env.Tag)
}

// Env returns metadata about the current build environment, gathered
// from the local git checkout.
func Env() *Environment {
	env := applyEnvFlags(&Environment{Name: "local"})

	head := readGitFile("HEAD")
	if fields := strings.Fields(head); len(fields) == 2 {
		head = fields[1]
	} else {
		// In this case we are in "detached head" state
		// see: https://git-scm.com/docs/git-checkout#_detached_head
		// Additional check required to verify, that file contains commit hash
		commitRe, _ := regexp.Compile("^([0-9a-f]{40})$")
		if commit := commitRe.FindString(head); commit != "" && env.Commit == "" {
			env.Commit = commit
			env.Date = getDate(env.Commit)
		}
		return env
	}
	if env.Commit == "" {
		env.Commit = readGitFile(head)
		env.Date = getDate(env.Commit)
	}
	if env.Branch == "" && head != "HEAD" {
		env.Branch = strings.TrimPrefix(head, "refs/heads/")
	}
	if info, err := os.Stat(".git/objects"); err == nil && info.IsDir() && env.Tag == "" {
		env.Tag = firstLine(RunGit("tag", "-l", "--points-at", "HEAD"))
	}
	return env
}

func firstLine(s string) string {
	return strings.Split(s, "\n")[0]
}

func getDate(commit string) string {
	if commit == "" {
		return ""
	}
	out := RunGit("show", "-s", "--format=%ct", commit)
	if out == "" {
		return ""
	}
	date, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("failed to parse git commit date: %v", err))
	}
	return time.Unix(date, 0).Format("20060102")
}

func applyEnvFlags(env *Environment) *Environment {
	if !flag.Parsed() {
		panic("you need to call flag.Parse before Env")
	}
	if *GitCommitFlag != "" {
		env.Commit = *GitCommitFlag
	}
	if *GitBranchFlag != "" {
		env.Branch = *GitBranchFlag
	}
	if *GitTagFlag != "" {
		env.Tag = *GitTagFlag
	}
	return env
}
