package stats

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blockstore-io/blockstore/go/common/constant"
	"github.com/blockstore-io/blockstore/go/common/log"
	"github.com/blockstore-io/blockstore/go/io/fs"
	"github.com/blockstore-io/blockstore/go/io/fs/file"
)

var ErrStatsNotFound = errors.New("segment stats not found")

// ReaderWriter persists segment statistics as versioned metadata files
// under <root>/stats, one file per version, written atomically via a
// temp file and rename.
type ReaderWriter struct {
	fs   fs.Fs
	root string
}

func NewReaderWriter(fs fs.Fs, root string) ReaderWriter {
	return ReaderWriter{fs: fs, root: root}
}

func GetStatsDir(root string) string {
	return filepath.Join(root, constant.StatsDir)
}

func GetStatsFilePath(root string, version int64) string {
	return filepath.Join(GetStatsDir(root), "v"+strconv.FormatInt(version, 10)+constant.StatsFileSuffix)
}

func GetStatsTmpFilePath(root string, version int64) string {
	return filepath.Join(GetStatsDir(root), "v"+strconv.FormatInt(version, 10)+constant.StatsTempFileSuffix)
}

// ParseVersionFromFileName returns the version encoded in a stats file
// name, or -1 if the name is not a stats file.
func ParseVersionFromFileName(name string) int64 {
	if !strings.HasPrefix(name, "v") || !strings.HasSuffix(name, constant.StatsFileSuffix) {
		return -1
	}
	v, err := strconv.ParseInt(name[1:len(name)-len(constant.StatsFileSuffix)], 10, 64)
	if err != nil {
		return -1
	}
	return v
}

func (rw ReaderWriter) Read(version int64) (*SegmentStats, error) {
	files, err := rw.fs.List(GetStatsDir(rw.root))
	if err != nil {
		return nil, err
	}

	var maxVersionPath string
	var maxVersion int64 = -1
	for _, f := range files {
		ver := ParseVersionFromFileName(filepath.Base(f.Path))
		if ver == -1 {
			continue
		}
		if version != constant.LatestStatsVersion {
			if ver == version {
				return ParseFromFile(rw.fs, f.Path)
			}
		} else if ver > maxVersion {
			maxVersion = ver
			maxVersionPath = f.Path
		}
	}

	if maxVersion != -1 {
		return ParseFromFile(rw.fs, maxVersionPath)
	}
	return nil, ErrStatsNotFound
}

func (rw ReaderWriter) MaxVersion() (int64, error) {
	files, err := rw.fs.List(GetStatsDir(rw.root))
	if err != nil {
		return -1, err
	}
	var max int64 = -1
	for _, f := range files {
		ver := ParseVersionFromFileName(filepath.Base(f.Path))
		if ver > max {
			max = ver
		}
	}
	if max == -1 {
		return -1, ErrStatsNotFound
	}
	return max, nil
}

func (rw ReaderWriter) Write(s *SegmentStats) error {
	if err := rw.fs.CreateDir(GetStatsDir(rw.root)); err != nil {
		return err
	}
	tmpPath := GetStatsTmpFilePath(rw.root, s.Version)
	path := GetStatsFilePath(rw.root, s.Version)
	output, err := rw.fs.OpenFile(tmpPath)
	if err != nil {
		return err
	}
	if err = WriteStatsFile(s, output); err != nil {
		return err
	}
	if err = rw.fs.Rename(tmpPath, path); err != nil {
		return err
	}
	log.Debug("segment stats saved", log.String("path", path), log.Int64("version", s.Version))
	return nil
}

func ParseFromFile(f fs.Fs, path string) (*SegmentStats, error) {
	data, err := f.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &SegmentStats{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func WriteStatsFile(s *SegmentStats, output file.File) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if _, err = output.Write(data); err != nil {
		return err
	}
	return output.Close()
}
