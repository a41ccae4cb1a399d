// ===============================
// internal/models/subscription.go - Subscription Edge and Views
// ===============================

package models

import "time"

type Subscription struct {
	ID           string    `db:"id" json:"id"`
	SubscriberID string    `db:"subscriber_id" json:"subscriber"`
	ChannelID    string    `db:"channel_id" json:"channel"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// SubscribeResult reports the edge state after a toggle call.
type SubscribeResult struct {
	Subscribed bool `json:"subscribed"`
}

// ChannelSubscribers is the grouped subscriber-list view for one channel.
// SubscribersCount is the cardinality of Subscribers, computed per request.
type ChannelSubscribers struct {
	ChannelInfo      ChannelInfo      `json:"channelInfo"`
	Subscribers      []SubscriberInfo `json:"subscribers"`
	SubscribersCount int              `json:"subscribersCount"`
}

// SubscribedChannels is the symmetric view grouped by subscriber.
type SubscribedChannels struct {
	UserInfo               SubscriberInfo `json:"userInfo"`
	SubscribedChannels     []ChannelInfo  `json:"subscribedChannels"`
	SubscribedChannelCount int            `json:"subscribedChannelCount"`
}
