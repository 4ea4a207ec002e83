// Package driverdb lists the built-in utility drivers.
package driverdb

import (
	"github.com/goodglamm/g3util/core/driver"
	"github.com/goodglamm/g3util/drivers/utilarrays"
	"github.com/goodglamm/g3util/drivers/utilfiles"
	"github.com/goodglamm/g3util/drivers/utilinput"
	"github.com/goodglamm/g3util/drivers/utilstrings"
	"github.com/goodglamm/g3util/drivers/utiltime"
)

// Defaults returns the built-in drivers, all registered as singletons.
func Defaults() []driver.Entry {
	return []driver.Entry{
		{Module: utilarrays.Driver, Mode: driver.ModeSingleton},
		{Module: utilfiles.Driver, Mode: driver.ModeSingleton},
		{Module: utilinput.Driver, Mode: driver.ModeSingleton},
		{Module: utilstrings.Driver, Mode: driver.ModeSingleton},
		{Module: utiltime.Driver, Mode: driver.ModeSingleton},
	}
}
