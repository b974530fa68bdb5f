package commands

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed all:templates
var templateFS embed.FS

// templateSuffix marks files rendered with text/template. The suffix is
// dropped from the written name.
const templateSuffix = ".tmpl"

// scaffold writes the embedded template directory name into dir, rendering
// .tmpl files with data. Existing files are kept unless force is set. It
// returns the written paths relative to dir, slash-separated.
func scaffold(name, dir string, data any, force bool) ([]string, error) {
	root := path.Join("templates", name)
	var written []string

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || p == root {
			return err
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(p, root+"/"), templateSuffix)
		target := filepath.Join(dir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0750)
		}
		if _, err := os.Stat(target); err == nil && !force {
			return nil
		}

		content, err := renderTemplateFile(p, data)
		if err != nil {
			return fmt.Errorf("render %s: %w", rel, err)
		}
		if err := os.WriteFile(target, content, 0600); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})

	return written, err
}

// renderTemplateFile returns the content of the embedded file p, executed
// as a template when it carries templateSuffix.
func renderTemplateFile(p string, data any) ([]byte, error) {
	raw, err := templateFS.ReadFile(p)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(p, templateSuffix) {
		return raw, nil
	}

	tmpl, err := template.New(path.Base(p)).Parse(string(raw))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
