package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM flattens a struct into an equality filter keyed by bson tags.
// Nil pointers and empty omitempty fields are left out, every other field
// is matched on its value, zero included.
func MakeBsonM(filter interface{}) (bson.M, error) {
	val := reflect.ValueOf(filter)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	bsonM := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}

		switch {
		case tag.Skip, !field.CanInterface():
		case tag.OmitEmpty && field.IsZero():
		case field.Kind() == reflect.Ptr:
			if !field.IsNil() {
				bsonM[tag.Name] = field.Elem().Interface()
			}
		default:
			bsonM[tag.Name] = field.Interface()
		}
	}

	return bsonM, nil
}
