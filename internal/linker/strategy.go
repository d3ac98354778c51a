// ABOUTME: Link strategies: symlink, cmd-shell directory junction, deep copy
// ABOUTME: Availability is probed per source, never by OS name

package linker

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

type strategy interface {
	name() string
	available(source string) bool
	link(source, target string) error
}

type symlinkStrategy struct{}

func (symlinkStrategy) name() string { return "symlink" }

func (symlinkStrategy) available(string) bool { return true }
func (symlinkStrategy) link(source, target string) error {
	return os.Symlink(source, target)
}

// junctionStrategy creates NTFS directory junctions, which unlike symlinks
// need no elevated privileges. It only applies to directories and only
// where a cmd shell resolves.
type junctionStrategy struct{}

func (junctionStrategy) name() string { return "junction" }

func (junctionStrategy) available(source string) bool {
	fi, err := os.Stat(source)
	if err != nil || !fi.IsDir() {
		return false
	}
	_, err = exec.LookPath("cmd")
	return err == nil
}

func (junctionStrategy) link(source, target string) error {
	out, err := exec.Command("cmd", "/c", "mklink", "/J", target, source).CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink /J: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

type copyStrategy struct{}

func (copyStrategy) name() string { return "copy" }

func (copyStrategy) available(string) bool { return true }

func (copyStrategy) link(source, target string) error {
	return copyTree(source, target)
}

// copyTree copies a file or directory tree, preserving file modes and
// recreating symlinks it finds inside.
func copyTree(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return copyFile(source, target, info.Mode().Perm())
	}

	return filepath.WalkDir(source, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(dest, 0o755)
		case d.Type()&fs.ModeSymlink != 0:
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(linkTarget, dest)
		case d.Type().IsRegular():
			fi, err := d.Info()
			if err != nil {
				return err
			}
			return copyFile(path, dest, fi.Mode().Perm())
		default:
			return nil
		}
	})
}

func copyFile(source, target string, perm os.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
