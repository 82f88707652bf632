// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/gan-datasets/internal/store"
	"github.com/spf13/afero"
)

const indexFile = "index.html"

// staticFiles serves the public web root. Directories are only served
// through their index.html. Upload directories are hidden unless uploads
// are exposed, and staged uploads are never served.
func (h *Handler) staticFiles() http.Handler {
	root := publicFileSystem{
		FileSystem: afero.NewHttpFs(h.fs).Dir(h.files.PublicDir),
	}

	if !h.files.UploadsExposed() {
		for _, dir := range []string{h.files.UserDataSetsDir, h.files.ImageDataSetsDir} {
			root.hidden = append(root.hidden, path.Clean("/"+filepath.ToSlash(dir)))
		}
		h.logger.Info().Strs("hidden", root.hidden).Msg("upload directories are not served")
	}

	return http.FileServer(root)
}

type publicFileSystem struct {
	http.FileSystem

	// hidden holds slash-separated paths relative to the web root.
	hidden []string
}

func (p publicFileSystem) Open(name string) (http.File, error) {
	name = path.Clean("/" + name)
	if store.IsStagedFile(path.Base(name)) {
		return nil, fs.ErrNotExist
	}
	for _, dir := range p.hidden {
		if dir == "/" || name == dir || strings.HasPrefix(name, dir+"/") {
			return nil, fs.ErrNotExist
		}
	}

	f, err := p.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := p.FileSystem.Open(path.Join(name, indexFile))
	if err != nil {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	_ = index.Close()

	return f, nil
}
