package extract

import "github.com/srinivassivaratri/namemate/internal/config"

func defaultExtractConfig() config.ExtractConfig {
	return config.DefaultConfig().Extract
}
