package tools

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/terrain-map/hmap_converter/internal/converter"
)

type FileFinder interface {
	GetMeshFilesToProcess(opts *converter.Options) []string
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

// GetMeshFilesToProcess returns the mesh files the conversion should run on.
// Without folder processing that is just the input path; otherwise every .obj
// and .ply file in the input folder, descending into subfolders only when the
// recursive option is set.
func (f *StandardFileFinder) GetMeshFilesToProcess(opts *converter.Options) []string {
	if !opts.FolderProcessing {
		return []string{opts.Input}
	}

	return f.getMeshFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getMeshFilesFromInputFolder(opts *converter.Options) []string {
	var meshFiles = make([]string, 0)

	baseInfo, _ := os.Stat(opts.Input)
	err := filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if info.IsDir() && !opts.Recursive && !os.SameFile(info, baseInfo) {
				return filepath.SkipDir
			}
			if isMeshFile(info.Name()) {
				meshFiles = append(meshFiles, path)
			}
			return nil
		},
	)

	if err != nil {
		glog.Fatal(err)
	}

	return meshFiles
}

func isMeshFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".obj" || ext == ".ply"
}
