package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
)

func (client *Client) GetPlayer(ctx context.Context, playerId string) (entities.Player, error) {
	output, err := client.dynamodb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: client.cfg.PlayersTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{
				Value: playerId,
			},
		},
	})
	if err != nil {
		return entities.Player{}, err
	}
	if output.Item == nil {
		return entities.Player{}, interfaces.ErrPlayerNotFound
	}
	var player entities.Player
	if err := attributevalue.UnmarshalMap(output.Item, &player); err != nil {
		return entities.Player{}, err
	}
	return player, nil
}

func (client *Client) ListPlayers(ctx context.Context) ([]entities.Player, error) {
	var players []entities.Player
	var lastKey map[string]types.AttributeValue
	for {
		output, err := client.dynamodb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         client.cfg.PlayersTableName,
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		var page []entities.Player
		if err := attributevalue.UnmarshalListOfMaps(output.Items, &page); err != nil {
			return nil, err
		}
		players = append(players, page...)
		lastKey = output.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}
	return players, nil
}

func (client *Client) PutPlayer(ctx context.Context, player entities.Player) error {
	av, err := attributevalue.MarshalMap(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player map: %w", err)
	}
	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.PlayersTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put player: %w", err)
	}
	return nil
}

func (client *Client) UpdatePlayer(
	ctx context.Context,
	playerId string,
	opts interfaces.PlayerUpdateOptions,
) error {
	updateExpression := []string{}
	expressionAttributeValues := map[string]types.AttributeValue{}
	expressionAttributeNames := map[string]string{}

	if opts.Name != nil {
		updateExpression = append(updateExpression, "#name = :name")
		expressionAttributeNames["#name"] = "Name"
		expressionAttributeValues[":name"] = &types.AttributeValueMemberS{
			Value: *opts.Name,
		}
	}
	if opts.Tier != nil {
		updateExpression = append(updateExpression, "Tier = :tier")
		expressionAttributeValues[":tier"] = &types.AttributeValueMemberS{
			Value: string(*opts.Tier),
		}
	}
	if opts.Attributes != nil {
		av, err := attributevalue.Marshal(*opts.Attributes)
		if err != nil {
			return fmt.Errorf("failed to marshal attributes: %w", err)
		}
		updateExpression = append(updateExpression, "Attributes = :attributes")
		expressionAttributeValues[":attributes"] = av
	}
	if opts.Rating != nil {
		updateExpression = append(updateExpression, "Rating = :rating")
		expressionAttributeValues[":rating"] = &types.AttributeValueMemberN{
			Value: fmt.Sprintf("%d", *opts.Rating),
		}
	}
	if opts.StyleLabel != nil {
		updateExpression = append(updateExpression, "StyleLabel = :styleLabel")
		expressionAttributeValues[":styleLabel"] = &types.AttributeValueMemberS{
			Value: *opts.StyleLabel,
		}
	}
	if opts.StyleDescription != nil {
		updateExpression = append(updateExpression, "StyleDescription = :styleDescription")
		expressionAttributeValues[":styleDescription"] = &types.AttributeValueMemberS{
			Value: *opts.StyleDescription,
		}
	}
	if opts.HistoryAnalysis != nil {
		updateExpression = append(updateExpression, "HistoryAnalysis = :historyAnalysis")
		expressionAttributeValues[":historyAnalysis"] = &types.AttributeValueMemberS{
			Value: *opts.HistoryAnalysis,
		}
	}
	if len(updateExpression) == 0 {
		return nil
	}

	input := &dynamodb.UpdateItemInput{
		TableName: client.cfg.PlayersTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{Value: playerId},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(updateExpression, ", ")),
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}
	_, err := client.dynamodb.UpdateItem(ctx, input)
	if err != nil {
		return err
	}
	return nil
}

func (client *Client) DeletePlayer(ctx context.Context, playerId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.PlayersTableName,
		Key: map[string]types.AttributeValue{
			"Id": &types.AttributeValueMemberS{Value: playerId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}
