package db

import (
	"strconv"

	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetSongMetadatas fetches stored metadata rows keyed by song name.
// Returns nothing when no metadata endpoint is configured, so callers can
// treat metadata as strictly optional.
func GetSongMetadatas(names []string) map[string]model.SongMetadata {
	if len(names) > 10 {
		panic("Not supposed to pass in more than 10 song names!")
	}

	res := make(map[string]model.SongMetadata)

	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" || len(names) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	session, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetMetadataRegion()),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.MetadataTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[constants.MetadataTable] {
		var s model.SongMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		s.Artist = aws.StringValue(v["Artist"].S)
		s.Release = aws.StringValue(v["Release"].S)
		s.Title = aws.StringValue(v["Title"].S)
		res[aws.StringValue(v["PK"].S)] = s
	}

	return res
}
