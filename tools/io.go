package tools

import (
	"os"

	"github.com/golang/glog"
)

func OpenFileOrFail(filePath string) *os.File {
	file, err := os.Open(filePath)
	if err != nil {
		glog.Fatal(err)
	}

	return file
}

func CreateFileOrFail(filePath string) *os.File {
	file, err := os.Create(filePath)
	if err != nil {
		glog.Fatal(err)
	}

	return file
}

// CanOpenForRead probes whether the path is readable, without consuming it.
// Used by the parameter validators before any conversion work starts.
func CanOpenForRead(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// CanOpenForWrite probes whether the path can be opened for appending. The
// probe never truncates an existing file and removes nothing it created.
func CanOpenForWrite(filePath string) bool {
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

func CreateDirectoryIfDoesNotExist(directory string) error {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		err := os.MkdirAll(directory, 0777)
		if err != nil {
			return err
		}
	}
	return nil
}
