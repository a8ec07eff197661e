package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieDocument is a movie exactly as stored. The list and detail endpoints
// relay it without reshaping, so mistyped fields (a year of "1995è", an
// imdb.rating of "") and fields unknown to this service pass through.
type MovieDocument bson.M

// DecodeMovieDocument decodes raw with nested documents as maps, which keeps
// the JSON rendering of embedded objects such as imdb or awards.
func DecodeMovieDocument(raw bson.Raw) (MovieDocument, error) {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var doc bson.M
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return MovieDocument(doc), nil
}

// MovieSummary is the narrowed, read-only view used to build the
// recommendation digest. It is never persisted.
type MovieSummary struct {
	ID     primitive.ObjectID `bson:"_id"`
	Title  Scalar             `bson:"title"`
	Year   Scalar             `bson:"year"`
	Genre  Genre              `bson:"genre"`
	Plot   Scalar             `bson:"plot"`
	Rating Scalar             `bson:"rating"`
}

// Scalar holds a loosely typed stored value. The catalog mixes numbers and
// strings under the same key.
type Scalar struct {
	Value interface{}
}

func (s *Scalar) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		s.Value = nil
	case bsontype.String:
		s.Value = raw.StringValue()
	case bsontype.Int32:
		s.Value = int64(raw.Int32())
	case bsontype.Int64:
		s.Value = raw.Int64()
	case bsontype.Double:
		s.Value = raw.Double()
	case bsontype.Boolean:
		s.Value = raw.Boolean()
	case bsontype.Decimal128:
		s.Value = raw.Decimal128().String()
	default:
		s.Value = raw.String()
	}
	return nil
}

// Missing reports whether the value is absent, blank text, zero or false.
func (s Scalar) Missing() bool {
	switch v := s.Value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0 || math.IsNaN(v)
	case bool:
		return !v
	}
	return false
}

func (s Scalar) String() string {
	switch v := s.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(s.Value)
}

// Genre accepts either a single string or an array of strings in the store.
type Genre []string

// String joins the genre values with "," for display.
func (g Genre) String() string {
	return strings.Join(g, ",")
}

// Empty reports whether no non-blank genre is present.
func (g Genre) Empty() bool {
	for _, v := range g {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (g *Genre) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*g = nil
	case bsontype.String:
		if s := strings.TrimSpace(raw.StringValue()); s != "" {
			*g = Genre{s}
		} else {
			*g = nil
		}
	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return err
		}
		out := make(Genre, 0, len(values))
		for _, v := range values {
			if s, ok := v.StringValueOK(); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		*g = out
	default:
		var s Scalar
		if err := s.UnmarshalBSONValue(t, data); err != nil {
			return err
		}
		if s.Missing() {
			*g = nil
		} else {
			*g = Genre{s.String()}
		}
	}
	return nil
}
