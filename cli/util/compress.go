package util

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// extractTarEntry writes a single archive entry under dstDir.
func extractTarEntry(header *tar.Header, content io.Reader, dstDir string) error {
	dstPath := filepath.Join(dstDir, header.Name)

	switch header.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(dstPath, 0o755)
	case tar.TypeReg:
		// Entries are not guaranteed to come in walk order, so the parent
		// directory may be missing at this point.
		if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
			return err
		}

		outFile, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY,
			header.FileInfo().Mode().Perm())
		if err != nil {
			return err
		}
		defer outFile.Close()

		_, err = io.Copy(outFile, content)
		return err
	case tar.TypeSymlink:
		return os.Symlink(header.Linkname, dstPath)
	}

	return fmt.Errorf("unknown type: %b in %s", header.Typeflag, header.Name)
}

// ExtractTarGz extracts tar.gz archive to dstDir.
func ExtractTarGz(tarName, dstDir string) error {
	archive, err := os.Open(tarName)
	if err != nil {
		return err
	}
	defer archive.Close()

	uncompressed, err := gzip.NewReader(archive)
	if err != nil {
		return err
	}

	tarReader := tar.NewReader(uncompressed)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if err := extractTarEntry(header, tarReader, dstDir); err != nil {
			return err
		}
	}
}
