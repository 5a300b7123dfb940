//go:build windows

package installer

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/frogworks/frogworks/internal/version"
)

const (
	appKeyPath    = `SOFTWARE\Frogworks`
	schemeKeyPath = `Software\Classes\` + version.URIScheme
)

// install writes the application keys and the URI scheme registration.
func install(layout Layout) error {
	if err := createAppKeys(layout); err != nil {
		rollback()
		return fmt.Errorf("create registry keys: %w", err)
	}
	if err := registerURIScheme(layout.DaemonPath); err != nil {
		rollback()
		return fmt.Errorf("register URI scheme: %w", err)
	}
	return nil
}

// createAppKeys records the installed binary locations under
// HKLM\SOFTWARE\Frogworks.
func createAppKeys(layout Layout) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, appKeyPath, registry.ALL_ACCESS)
	if err != nil {
		return err
	}
	defer key.Close()

	if err := key.SetStringValue("MainExecutablePath", layout.ExecutablePath); err != nil {
		return err
	}
	if err := key.SetStringValue("CLIPath", layout.CLIPath); err != nil {
		return err
	}
	if err := key.SetStringValue("DaemonPath", layout.DaemonPath); err != nil {
		return err
	}
	return key.SetStringValue("InstallationPath", layout.InstallDir)
}

// registerURIScheme points frogworks:// links at the daemon so clicks are
// relayed into the running instance.
func registerURIScheme(daemonPath string) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, schemeKeyPath, registry.ALL_ACCESS)
	if err != nil {
		return err
	}
	defer key.Close()

	if err := key.SetStringValue("", fmt.Sprintf("URL:%s Protocol", version.URIScheme)); err != nil {
		return err
	}
	// Must exist and be empty for Windows to treat this as a protocol.
	if err := key.SetStringValue("URL Protocol", ""); err != nil {
		return err
	}

	commandKey, _, err := registry.CreateKey(key, `shell\open\command`, registry.ALL_ACCESS)
	if err != nil {
		return err
	}
	defer commandKey.Close()

	return commandKey.SetStringValue("", fmt.Sprintf(`"%s" "%%1"`, daemonPath))
}

// uninstall removes everything install created.
func uninstall() error {
	if err := deleteKeyTree(registry.LOCAL_MACHINE, appKeyPath); err != nil {
		return fmt.Errorf("remove registry keys: %w", err)
	}
	if err := deleteKeyTree(registry.LOCAL_MACHINE, schemeKeyPath); err != nil {
		return fmt.Errorf("unregister URI scheme: %w", err)
	}
	return nil
}

// rollback best-effort removes partial installation state.
func rollback() {
	_ = deleteKeyTree(registry.LOCAL_MACHINE, appKeyPath)
	_ = deleteKeyTree(registry.LOCAL_MACHINE, schemeKeyPath)
}

// deleteKeyTree deletes a key and its subkeys. A missing key is not an error.
func deleteKeyTree(root registry.Key, path string) error {
	key, err := registry.OpenKey(root, path, registry.READ|registry.ENUMERATE_SUB_KEYS)
	if err == registry.ErrNotExist {
		return nil
	}
	if err != nil {
		return err
	}

	subkeys, err := key.ReadSubKeyNames(-1)
	key.Close()
	if err != nil {
		return err
	}

	for _, subkey := range subkeys {
		if err := deleteKeyTree(root, path+`\`+subkey); err != nil {
			return err
		}
	}
	return registry.DeleteKey(root, path)
}
