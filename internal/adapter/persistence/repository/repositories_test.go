package repository

import (
	"context"
	"testing"
	"time"

	"fenceworks/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func stringAttr(t *testing.T, av types.AttributeValue) string {
	t.Helper()
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected string attribute, got %T", av)
	}
	return s.Value
}

func TestProductRepository_Delete(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewProductDynamoRepository(ddb)

	ok, err := repo.Delete(context.Background(), "p-1")
	if err != nil || !ok {
		t.Fatalf("expected delete, got %v, %v", ok, err)
	}

	ddb.err = &types.ConditionalCheckFailedException{}
	ok, err = repo.Delete(context.Background(), "p-1")
	if err != nil || ok {
		t.Fatalf("expected no-op delete, got %v, %v", ok, err)
	}
}

func TestProductRepository_UpdateMissing(t *testing.T) {
	ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
	p, err := NewProductDynamoRepository(ddb).Update(context.Background(), entities.Product{ID: "p-1", Name: "Cedar"})
	if err != nil || p.ID != "" {
		t.Fatalf("expected zero product, got %+v, %v", p, err)
	}
	if got := aws.ToString(ddb.put.ConditionExpression); got != "attribute_exists(#id)" {
		t.Fatalf("unexpected condition %q", got)
	}
}

func TestProjectItem_Milestones(t *testing.T) {
	day := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:     "pr-1",
		Status: entities.ProjectStatusInProgress,
		Milestones: []entities.Milestone{
			{Name: "Site survey", Status: "Completed", Date: &day},
			{Name: "Installation", Status: "Pending"},
		},
	}
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromProjectItem(it)
	if len(got.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(got.Milestones))
	}
	if got.Milestones[0].Date == nil || !got.Milestones[0].Date.Equal(day) {
		t.Fatalf("first milestone date: got %v", got.Milestones[0].Date)
	}
	if got.Milestones[1].Date != nil {
		t.Fatalf("second milestone should have no date, got %v", got.Milestones[1].Date)
	}
	if got.Status != entities.ProjectStatusInProgress {
		t.Fatalf("unexpected status %s", got.Status)
	}
}

func TestProjectRepository_GetByQuoteID(t *testing.T) {
	ddb := &fakeDynamo{}
	p, err := NewProjectDynamoRepository(ddb).GetByQuoteID(context.Background(), "q-1")
	if err != nil || p.ID != "" {
		t.Fatalf("expected zero project, got %+v, %v", p, err)
	}
	if got := aws.ToString(ddb.query.IndexName); got != "quote_id-index" {
		t.Fatalf("unexpected index %q", got)
	}
}

func TestUserItem_UnknownRoleIsCustomer(t *testing.T) {
	if got := fromUserItem(userItem{ID: "u-1", Role: "superuser"}).Role; got != entities.RoleCustomer {
		t.Fatalf("expected Customer, got %s", got)
	}
	if got := fromUserItem(userItem{Role: "Admin"}).Role; got != entities.RoleAdmin {
		t.Fatalf("expected Admin, got %s", got)
	}
}

func TestUserRepository_UpdateContactLeavesRole(t *testing.T) {
	ddb := &fakeDynamo{}
	if _, err := NewUserDynamoRepository(ddb).UpdateContact(context.Background(), "u-1", "Ann", "555", "Austin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range ddb.update.ExpressionAttributeNames {
		if v == "role" {
			t.Fatalf("role must not be written: %q", aws.ToString(ddb.update.UpdateExpression))
		}
	}
	if got := stringAttr(t, ddb.update.ExpressionAttributeValues[":name"]); got != "Ann" {
		t.Fatalf("unexpected :name %q", got)
	}
}

func TestSettingsRepository_GetUnset(t *testing.T) {
	ddb := &fakeDynamo{}
	_, found, err := NewSettingsDynamoRepository(ddb).Get(context.Background())
	if err != nil || found {
		t.Fatalf("expected unset settings, got found=%v err=%v", found, err)
	}
	if got := stringAttr(t, ddb.get.Key["id"]); got != settingsItemID {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestCredentialRepository(t *testing.T) {
	t.Run("email key is lowercased", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewCredentialDynamoRepository(ddb)

		created, err := repo.Create(context.Background(), entities.Credential{Email: " Ann@Example.COM ", UserID: "u-1"})
		if err != nil || !created {
			t.Fatalf("expected create, got %v, %v", created, err)
		}
		if got := stringAttr(t, ddb.put.Item["email"]); got != "ann@example.com" {
			t.Fatalf("unexpected stored email %q", got)
		}

		if _, err := repo.GetByEmail(context.Background(), "ANN@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := stringAttr(t, ddb.get.Key["email"]); got != "ann@example.com" {
			t.Fatalf("unexpected lookup key %q", got)
		}
	})

	t.Run("taken email", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		created, err := NewCredentialDynamoRepository(ddb).Create(context.Background(), entities.Credential{Email: "a@b.co"})
		if err != nil || created {
			t.Fatalf("expected taken email, got %v, %v", created, err)
		}
	})

	t.Run("lockout survives round trip", func(t *testing.T) {
		until := time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC)
		av, err := attributevalue.MarshalMap(toCredentialItem(entities.Credential{Email: "a@b.co", FailedAttempts: 5, LockedUntil: until}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}}

		c, err := NewCredentialDynamoRepository(ddb).GetByEmail(context.Background(), "a@b.co")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.FailedAttempts != 5 || !c.LockedUntil.Equal(until) || !c.ResetExpiresAt.IsZero() {
			t.Fatalf("unexpected credential: %+v", c)
		}
	})
}
