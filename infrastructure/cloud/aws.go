// Package cloud carrega a configuração compartilhada pelos clientes AWS
package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/vfg2006/creator-automation/internal/config"
)

const defaultRegion = "us-east-1"

// LoadAWSConfig usa as chaves estáticas quando configuradas e, sem elas, a cadeia
// padrão do SDK (variáveis de ambiente, profile, role da instância)
func LoadAWSConfig(ctx context.Context, cfg config.AWS) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}

	return awsCfg, nil
}
