package repository

import (
	"context"
	"time"

	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehicleCacheTableName = "vehicle_cache"

type vehicleItem struct {
	Plate     string `dynamodbav:"plate"`
	Brand     string `dynamodbav:"brand,omitempty"`
	Model     string `dynamodbav:"model,omitempty"`
	Year      string `dynamodbav:"year,omitempty"`
	Color     string `dynamodbav:"color,omitempty"`
	Validated bool   `dynamodbav:"validated"`
	Source    string `dynamodbav:"source,omitempty"`
	CachedAt  string `dynamodbav:"cached_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// VehicleDynamoRepository caches vehicle lookups in DynamoDB.
//
// Table requirements:
//   - PK: plate (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads also check expires_at.

type VehicleDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IVehicleStore = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb dynamoAPI, tableName string, ttl time.Duration) *VehicleDynamoRepository {
	if tableName == "" {
		tableName = defaultVehicleCacheTableName
	}
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *VehicleDynamoRepository) Get(ctx context.Context, plate string) (entities.VehicleInfo, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"plate": &types.AttributeValueMemberS{Value: plate},
		},
	})
	if err != nil {
		return entities.VehicleInfo{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.VehicleInfo{}, false, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VehicleInfo{}, false, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return entities.VehicleInfo{}, false, nil
	}
	return fromVehicleItem(it), true, nil
}

func (r *VehicleDynamoRepository) Set(ctx context.Context, plate string, info entities.VehicleInfo) error {
	now := r.now()
	it := toVehicleItem(plate, info, now)
	if r.ttl > 0 {
		it.ExpiresAt = now.Add(r.ttl).Unix()
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toVehicleItem(plate string, v entities.VehicleInfo, now time.Time) vehicleItem {
	return vehicleItem{
		Plate:     plate,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		Validated: v.Validated,
		Source:    v.Source,
		CachedAt:  now.Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.VehicleInfo {
	return entities.VehicleInfo{
		Plate:     it.Plate,
		Brand:     it.Brand,
		Model:     it.Model,
		Year:      it.Year,
		Color:     it.Color,
		Validated: it.Validated,
		Source:    it.Source,
	}
}
