package storage

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Client struct {
	dynamodb *dynamodb.Client
	cfg      config
}

type config struct {
	PlayersTableName *string
	MatchesTableName *string
}

func NewClient(dynamoClient *dynamodb.Client) *Client {
	return &Client{
		dynamodb: dynamoClient,
		cfg:      loadConfig(),
	}
}

func loadConfig() config {
	cfg := config{
		PlayersTableName: aws.String("Players"),
		MatchesTableName: aws.String("Matches"),
	}
	if v, ok := os.LookupEnv("PLAYERS_TABLE_NAME"); ok {
		cfg.PlayersTableName = aws.String(v)
	}
	if v, ok := os.LookupEnv("MATCHES_TABLE_NAME"); ok {
		cfg.MatchesTableName = aws.String(v)
	}
	return cfg
}
