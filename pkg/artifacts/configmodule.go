package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigModulePath is the configuration module rewritten to read from
// environment variables, relative to the template root.
const ConfigModulePath = "lib/config.ts"

// ConfigModuleBackupPath preserves the original configuration module. It is
// written once and never overwritten on later runs.
const ConfigModuleBackupPath = "lib/config.ts.original"

const configModule = `export const config = {
  auth: {
    providers: {
      google: {
        clientId: process.env.GOOGLE_CLIENT_ID || '',
        clientSecret: process.env.GOOGLE_CLIENT_SECRET || '',
      },
      azure: {
        clientId: process.env.AZURE_AD_CLIENT_ID || '',
        clientSecret: process.env.AZURE_AD_CLIENT_SECRET || '',
        tenantId: process.env.AZURE_AD_TENANT_ID || '',
      }
    }
  },
  app: {
    name: process.env.PROJECT_NAME || 'vvg-app',
    basePath: process.env.APP_BASE_PATH || ` + "`/${process.env.PROJECT_NAME || 'vvg-app'}`" + `,
  },
  storage: {
    provider: process.env.STORAGE_PROVIDER as 'local' | 's3' || 'local',
    local: {
      uploadDir: process.env.LOCAL_UPLOAD_DIR || './uploads',
    },
    s3: {
      bucket: process.env.S3_BUCKET_NAME || '',
      region: process.env.AWS_REGION || 'us-east-1',
      accessKeyId: process.env.AWS_ACCESS_KEY_ID || '',
      secretAccessKey: process.env.AWS_SECRET_ACCESS_KEY || '',
      folderPrefix: process.env.S3_FOLDER_PREFIX || ` + "`${process.env.PROJECT_NAME || 'vvg-app'}/`" + `,
    }
  },
  database: {
    url: process.env.DATABASE_URL || '',
  }
};
`

// RewriteConfigModule replaces lib/config.ts with an environment-driven
// version, preserving the existing file as lib/config.ts.original.
//
// The backup is the idempotency guard: if it already exists, or if there is
// no config module to replace, nothing is written and false is returned.
// This keeps the true original intact across repeated runs.
func RewriteConfigModule(root string) (bool, error) {
	configPath := filepath.Join(root, ConfigModulePath)
	backupPath := filepath.Join(root, ConfigModuleBackupPath)

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", ConfigModulePath, err)
	}
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", ConfigModuleBackupPath, err)
	}

	if err := os.Rename(configPath, backupPath); err != nil {
		return false, fmt.Errorf("failed to back up %s: %w", ConfigModulePath, err)
	}
	if err := os.WriteFile(configPath, []byte(configModule), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", ConfigModulePath, err)
	}
	return true, nil
}
