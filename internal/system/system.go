package system

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/sirupsen/logrus"
)

// Минимум свободного места на разделе с выходной директорией, ниже которого
// выводится предупреждение.
const minFreeBytes = 256 << 20

// FindEngine ищет исполняемый файл ImageMagick.
// Приоритеты:
// 1. magick (ImageMagick 7)
// 2. convert (классический ImageMagick 6)
func FindEngine() (string, error) {
	for _, name := range []string{"magick", "convert"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("ImageMagick not found in PATH (tried magick, convert)")
}

// EngineVersion возвращает первую строку вывода `<binary> -version`.
func EngineVersion(binary string) (string, error) {
	out, err := exec.Command(binary, "-version").CombinedOutput()
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line, nil
}

// DefaultJobs выбирает параллелизм для -jobs 0: число физических ядер,
// либо логических, если физические определить не удалось.
func DefaultJobs() int {
	if n, err := cpu.Counts(false); err == nil && n >= 1 {
		return n
	}
	return runtime.NumCPU()
}

// CheckDiskSpace предупреждает, когда на разделе с директорией dir остаётся
// мало свободного места.
func CheckDiskSpace(dir string, log *logrus.Logger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	usage, err := disk.Usage(dir)
	if err != nil {
		log.Infof("disk usage %s: %v", dir, err)
		return
	}
	if usage.Free < minFreeBytes {
		log.Warnf("low disk space: %d MB free in %s", usage.Free>>20, dir)
	}
}
