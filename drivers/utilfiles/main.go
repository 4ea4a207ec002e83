// Package utilfiles is the "files" driver: filesystem queries guarded
// against directory traversal.
package utilfiles

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/util/file"
)

type (
	// T is the files utility.
	T struct {
		log zerolog.Logger
	}
)

const (
	// DriverName is the registry name of the driver.
	DriverName = "files"
)

// Driver registers T as a shared instance.
var Driver = driver.NewSingleton(DriverName, func() any { return New() })

func New() *T {
	return &T{
		log: log.Logger.With().Str("pkg", DriverName).Logger(),
	}
}

// DoesExist returns true if p is not empty, exists on the filesystem and
// passes the traversal validation.
func (t T) DoesExist(p string) bool {
	return file.DoesExist(p)
}

// NumberOfLines returns the number of line terminators in the file at p.
// The file is read in fixed size chunks. A path failing DoesExist, a path
// not pointing to a regular file, or a read error, yields 0.
func (t T) NumberOfLines(p string) int {
	if !t.DoesExist(p) {
		return 0
	}
	if ok, err := file.ExistsAndRegular(p); err != nil {
		t.log.Debug().Err(err).Str("path", p).Msg("stat")
		return 0
	} else if !ok {
		t.log.Debug().Str("path", p).Msg("not a regular file")
		return 0
	}
	n, err := file.CountFileLines(p)
	if err != nil {
		t.log.Debug().Err(err).Str("path", p).Msg("count lines")
		return 0
	}
	return n
}
