package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laundry-finder-backend/internal/model"
)

// File is the on-disk fixture format.
type File struct {
	Shops         []model.LaundryShop       `yaml:"shops"`
	Notifications []model.NotificationEntry `yaml:"notifications"`
}

// Default returns the built-in fixtures.
func Default() File {
	return File{Shops: DefaultShops(), Notifications: DefaultNotifications()}
}

// LoadFile reads fixtures from a YAML file. Machine kinds missing in the file are
// filled in from the list the machine appears in.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	var file File
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return File{}, fmt.Errorf("failed to decode fixture file %s: %w", path, err)
	}

	for i := range file.Shops {
		fillKind(file.Shops[i].Washers, model.KindWasher)
		fillKind(file.Shops[i].Dryers, model.KindDryer)
	}
	return file, nil
}

// Resolve returns the fixtures at path, or the built-in ones when path is empty.
func Resolve(path string) (File, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func fillKind(machines []model.Machine, kind model.MachineKind) {
	for i := range machines {
		if machines[i].Kind == "" {
			machines[i].Kind = kind
		}
	}
}
