package storage

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
)

func (client *Client) GetMatch(ctx context.Context, matchId string) (entities.Match, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.MatchesTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: matchId,
			},
		},
	})
	if err != nil {
		return entities.Match{}, err
	}
	if output.Item == nil {
		return entities.Match{}, interfaces.ErrMatchNotFound
	}
	var match entities.Match
	if err := attributevalue.UnmarshalMap(output.Item, &match); err != nil {
		return entities.Match{}, err
	}
	return match, nil
}

// ListMatches re-reads the whole collection and orders it newest first.
// The table is keyed by Id only, so ordering happens client-side.
func (client *Client) ListMatches(ctx context.Context) ([]entities.Match, error) {
	var matches []entities.Match
	var lastKey map[string]types.AttributeValue
	for {
		output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         client.cfg.MatchesTableName,
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []entities.Match
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		matches = append(matches, page...)
		lastKey = output.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

func (client *Client) PutMatch(ctx context.Context, match entities.Match) error {
	av, err := attributevalue.MarshalMap(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.MatchesTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put match: %w", err)
	}
	return nil
}

func (client *Client) DeleteMatch(ctx context.Context, matchId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.MatchesTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{Value: matchId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
