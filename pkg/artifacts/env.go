// Package artifacts generates the fixed setup files that accompany a
// converted template: the environment-variable template, the rewritten
// configuration module (with a write-once backup of the original), and the
// end-user setup script.
package artifacts

import (
	"os"
	"path/filepath"
)

// EnvTemplateName is the environment template written at the template root.
const EnvTemplateName = ".env.template"

const envTemplate = `# Project Configuration
PROJECT_NAME=your-project-name
APP_BASE_PATH=/your-project-name

# Database
DATABASE_URL=

# AWS S3 Configuration (if using S3 storage)
AWS_REGION=
AWS_ACCESS_KEY_ID=
AWS_SECRET_ACCESS_KEY=
S3_BUCKET_NAME=
S3_FOLDER_PREFIX=${PROJECT_NAME}/

# Authentication
NEXTAUTH_URL=https://your-domain.com/${PROJECT_NAME}
NEXTAUTH_SECRET=

# Azure AD (if using Azure authentication)
AZURE_AD_CLIENT_ID=
AZURE_AD_CLIENT_SECRET=
AZURE_AD_TENANT_ID=

# Google OAuth (if using Google authentication)
GOOGLE_CLIENT_ID=
GOOGLE_CLIENT_SECRET=

# Storage Configuration
STORAGE_PROVIDER=local
LOCAL_UPLOAD_DIR=./uploads

# Other Configuration
NODE_ENV=production
PORT=3000
`

// WriteEnvTemplate writes the deployment-configuration template at the
// template root. Any existing file of that name is overwritten.
func WriteEnvTemplate(root string) error {
	return os.WriteFile(filepath.Join(root, EnvTemplateName), []byte(envTemplate), 0644)
}
