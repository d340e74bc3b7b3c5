package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ivlev/scansplit/internal/config"
	"github.com/ivlev/scansplit/internal/magick"
	"github.com/ivlev/scansplit/internal/splitter"
	"github.com/ivlev/scansplit/internal/system"
)

func main() {
	logLevel := flag.String("log", "warning", "Уровень логирования: warning или info")
	threshold := flag.Int("threshold", 90, "Порог бинаризации в процентах")
	connectivity := flag.Int("connectivity", 4, "Связность компонент: 4 или 8")
	deskew := flag.Int("deskew", 40, "Порог поиска угла поворота в процентах")
	fuzz := flag.Int("fuzz", 10, "Допуск цвета при обрезке рамки в процентах")
	minArea := flag.Float64("min-area", 0.1, "Минимальная площадь фото как доля самой большой")
	dpi := flag.Int("dpi", 300, "Разрешение рендеринга страниц PDF")
	jobs := flag.Int("jobs", 1, "Число параллельно обрабатываемых сканов (0 - по числу ядер)")
	preset := flag.String("preset", "", "Путь к YAML-пресету с параметрами")
	writePreset := flag.String("write-preset", "", "Сохранить текущие параметры в YAML-пресет и выйти")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: scansplit [flags] input [output_dir]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "input может быть изображением, директорией с изображениями или PDF.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *preset != "" {
		loaded, err := config.LoadPreset(*preset)
		if err != nil {
			logrus.Fatalf("[-] Ошибка чтения пресета: %v", err)
		}
		cfg = loaded
	}

	// Явно указанные флаги имеют приоритет над пресетом.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.LogLevel = *logLevel
		case "threshold":
			cfg.Threshold = *threshold
		case "connectivity":
			cfg.Connectivity = *connectivity
		case "deskew":
			cfg.Deskew = *deskew
		case "fuzz":
			cfg.Fuzz = *fuzz
		case "min-area":
			cfg.MinAreaFraction = *minArea
		case "dpi":
			cfg.DPI = *dpi
		case "jobs":
			cfg.Jobs = *jobs
		}
	})

	if cfg.LogLevel == "info" {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if *writePreset != "" {
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("[-] Некорректные параметры: %v", err)
		}
		if err := cfg.WritePreset(*writePreset); err != nil {
			logrus.Fatalf("[-] Ошибка записи пресета: %v", err)
		}
		fmt.Printf("[+] Пресет сохранен: %s\n", *writePreset)
		return
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.Input = flag.Arg(0)
	if flag.NArg() > 1 {
		cfg.OutputDir = flag.Arg(1)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("[-] Некорректные параметры: %v", err)
	}

	// Проверка наличия ImageMagick до начала обработки.
	binary, err := system.FindEngine()
	if err != nil {
		logrus.Fatalf("[-] Не найден ImageMagick (magick/convert). Установите ImageMagick: %v", err)
	}
	if version, err := system.EngineVersion(binary); err == nil {
		logrus.Infof("engine: %s (%s)", binary, version)
	}

	if cfg.Jobs == 0 {
		cfg.Jobs = system.DefaultJobs()
		logrus.Infof("jobs: auto -> %d", cfg.Jobs)
	}

	eng := magick.NewConvertEngine(binary, logrus.StandardLogger())
	project := splitter.NewProject(cfg, eng, logrus.StandardLogger())
	if err := project.Run(context.Background()); err != nil {
		logrus.Fatalf("[-] Ошибка обработки: %v", err)
	}
}
