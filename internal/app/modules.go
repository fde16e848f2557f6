package app

import (
	"github.com/vk/unitgrid/internal/catalog"
	"github.com/vk/unitgrid/modules/echo"
	"github.com/vk/unitgrid/modules/env_vars"
	"github.com/vk/unitgrid/modules/fee"
	"github.com/vk/unitgrid/modules/print"
	"github.com/vk/unitgrid/modules/text"
)

// coreModules is the definitive list of all constructor modules that are
// compiled into the unitgrid binary.
var coreModules = []catalog.Module{
	&echo.Module{},
	&env_vars.Module{},
	&fee.Module{},
	&print.Module{},
	&text.Module{},
}
