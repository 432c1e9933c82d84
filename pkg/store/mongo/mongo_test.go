package mongo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/gatexray/pkg/circuit"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{URI: "mongodb://localhost"}.withDefaults()
	if c.Database != DefaultDatabase || c.Collection != DefaultCollection || c.Timeout != DefaultTimeout {
		t.Errorf("withDefaults() = %+v", c)
	}

	c = Config{Database: "db", Collection: "c"}.withDefaults()
	if c.Database != "db" || c.Collection != "c" {
		t.Errorf("explicit values overwritten: %+v", c)
	}
}

func TestNewInvalidURI(t *testing.T) {
	if _, err := New(context.Background(), Config{URI: "postgres://nope"}); err == nil {
		t.Error("New() with a non-mongo scheme succeeded")
	}
}

func TestOperatorBSON(t *testing.T) {
	op := circuit.Operator{
		ID:     "abc",
		Title:  "Half adder",
		Custom: true,
		Components: []circuit.Component{
			{GateID: "XOR"},
			{GateID: "AND", Y: 1, W: 2},
		},
	}
	data, err := bson.Marshal(op)
	if err != nil {
		t.Fatal(err)
	}

	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["_id"] != "abc" {
		t.Errorf("_id = %v", doc["_id"])
	}
	if _, ok := doc["title"]; !ok {
		t.Error("missing title field used for sorting")
	}

	var back circuit.Operator
	if err := bson.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Components) != 2 || back.Components[1].W != 2 || back.Components[1].GateID != "AND" {
		t.Errorf("components = %+v", back.Components)
	}
}

func TestListOptionsSort(t *testing.T) {
	sort, ok := listOptions().Sort.(bson.D)
	if !ok || len(sort) != 2 || sort[0].Key != "title" || sort[1].Key != "_id" {
		t.Errorf("sort = %#v", listOptions().Sort)
	}
}
