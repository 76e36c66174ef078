package training

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte = 1024 * 1024
	// freecache entry header plus the longest key
	entryOverhead = 128
)

// ErrWindowTooLarge is returned when a window holds more activities than one index entry can list.
var ErrWindowTooLarge = errors.New("activity window too large to cache")

// ActivityCache keeps the most recently loaded activity window of each user.
// Writes are applied to the cached copy first so reads reflect them immediately.
//
// Every activity is its own entry; a small per-user index entry lists the ids
// of the window. freecache rejects entries above 1/1024 of its size, so the
// index bounds how many activities one window may hold.
type ActivityCache struct {
	cache         *freecache.Cache
	expirySeconds int
	maxEntryBytes int
}

type windowIndex struct {
	From        time.Time   `json:"from"`
	To          time.Time   `json:"to"`
	ActivityIDs []uuid.UUID `json:"ids"`
}

func NewActivityCache(sizeMegabytes, expirySeconds int) *ActivityCache {
	size := sizeMegabytes * megabyte
	return &ActivityCache{
		cache:         freecache.NewCache(size),
		expirySeconds: expirySeconds,
		maxEntryBytes: size/1024 - entryOverhead,
	}
}

func indexKey(userID uuid.UUID) []byte {
	return []byte("activities::" + userID.String())
}

func activityKey(userID, activityID uuid.UUID) []byte {
	return []byte("activities::" + userID.String() + "::" + activityID.String())
}

func (c *ActivityCache) index(userID uuid.UUID) (*windowIndex, bool) {
	indexBytes, err := c.cache.Get(indexKey(userID))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("get cached activity index for %s: %s", userID, err)
		}
		return nil, false
	}

	idx := &windowIndex{}
	if err := json.Unmarshal(indexBytes, idx); err != nil {
		log.Errorf("unmarshal cached activity index for %s: %s", userID, err)
		c.cache.Del(indexKey(userID))
		return nil, false
	}
	return idx, true
}

func (c *ActivityCache) activity(userID, activityID uuid.UUID) (*Activity, bool) {
	activityBytes, err := c.cache.Get(activityKey(userID, activityID))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("get cached activity %s: %s", activityID, err)
		}
		return nil, false
	}

	a := &Activity{}
	if err := json.Unmarshal(activityBytes, a); err != nil {
		log.Errorf("unmarshal cached activity %s: %s", activityID, err)
		return nil, false
	}
	return a, true
}

func (c *ActivityCache) storeActivity(userID uuid.UUID, a Activity) error {
	activityBytes, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal activity %s: %w", a.ID, err)
	}
	if err := c.cache.Set(activityKey(userID, a.ID), activityBytes, c.expirySeconds); err != nil {
		return fmt.Errorf("set cached activity %s: %w", a.ID, err)
	}
	return nil
}

// activities loads every activity listed in the index. One evicted entry drops the whole window.
func (c *ActivityCache) activities(userID uuid.UUID, idx *windowIndex) ([]Activity, bool) {
	activities := make([]Activity, 0, len(idx.ActivityIDs))
	for _, id := range idx.ActivityIDs {
		a, ok := c.activity(userID, id)
		if !ok {
			c.Invalidate(userID)
			return nil, false
		}
		activities = append(activities, *a)
	}
	return activities, true
}

func (c *ActivityCache) contains(idx *windowIndex, activityID uuid.UUID) bool {
	for _, id := range idx.ActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}

// Get returns the cached activities of the user if the cached window is exactly [from, to).
func (c *ActivityCache) Get(userID uuid.UUID, from, to time.Time) ([]Activity, bool) {
	idx, ok := c.index(userID)
	if !ok || !idx.From.Equal(from) || !idx.To.Equal(to) {
		return nil, false
	}
	return c.activities(userID, idx)
}

// Set replaces the cached window of the user. On error nothing is cached for the user.
func (c *ActivityCache) Set(userID uuid.UUID, from, to time.Time, activities []Activity) error {
	idx := &windowIndex{
		From:        from,
		To:          to,
		ActivityIDs: make([]uuid.UUID, 0, len(activities)),
	}
	for _, a := range activities {
		idx.ActivityIDs = append(idx.ActivityIDs, a.ID)
	}
	indexBytes, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal activity index: %w", err)
	}
	if len(indexBytes) > c.maxEntryBytes {
		c.Invalidate(userID)
		return fmt.Errorf("%d activities: %w", len(activities), ErrWindowTooLarge)
	}

	c.Invalidate(userID)
	for _, a := range activities {
		if err := c.storeActivity(userID, a); err != nil {
			c.dropActivities(userID, idx.ActivityIDs)
			return err
		}
	}
	if err := c.cache.Set(indexKey(userID), indexBytes, c.expirySeconds); err != nil {
		c.dropActivities(userID, idx.ActivityIDs)
		return fmt.Errorf("set cached activity index: %w", err)
	}
	return nil
}

// Refresh reloads the window through load and replaces the cached copy.
func (c *ActivityCache) Refresh(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
	load func(ctx context.Context) ([]Activity, error),
) ([]Activity, error) {
	activities, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Set(userID, from, to, activities); err != nil {
		log.Errorf("refresh cached activities for %s: %s", userID, err)
	}
	return activities, nil
}

// Find returns a copy of the cached activity with the given id.
func (c *ActivityCache) Find(userID, activityID uuid.UUID) (*Activity, bool) {
	idx, ok := c.index(userID)
	if !ok || !c.contains(idx, activityID) {
		return nil, false
	}
	return c.activity(userID, activityID)
}

// FindByTask returns a copy of the cached activity owning the task, and the task index.
func (c *ActivityCache) FindByTask(userID, taskID uuid.UUID) (*Activity, int, bool) {
	idx, ok := c.index(userID)
	if !ok {
		return nil, -1, false
	}
	for _, id := range idx.ActivityIDs {
		a, ok := c.activity(userID, id)
		if !ok {
			continue
		}
		for j := range a.Tasks {
			if a.Tasks[j].ID == taskID {
				return a, j, true
			}
		}
	}
	return nil, -1, false
}

// Replace swaps the cached copy of the activity for a. It is a no-op when the
// activity is not in the user's cached window.
func (c *ActivityCache) Replace(userID uuid.UUID, a Activity) bool {
	idx, ok := c.index(userID)
	if !ok || !c.contains(idx, a.ID) {
		return false
	}
	if err := c.storeActivity(userID, a); err != nil {
		log.Errorf("replace cached activity %s: %s", a.ID, err)
		c.Invalidate(userID)
		return false
	}
	return true
}

func (c *ActivityCache) Invalidate(userID uuid.UUID) {
	idx, ok := c.index(userID)
	c.cache.Del(indexKey(userID))
	if ok {
		c.dropActivities(userID, idx.ActivityIDs)
	}
}

func (c *ActivityCache) dropActivities(userID uuid.UUID, ids []uuid.UUID) {
	for _, id := range ids {
		c.cache.Del(activityKey(userID, id))
	}
}
