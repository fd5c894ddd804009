package events

// CharityDonation reports a donation to the channel's charity campaign.
type CharityDonation struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Broadcaster
	User
	CharityName        string         `json:"charity_name"`
	CharityDescription string         `json:"charity_description"`
	CharityLogo        string         `json:"charity_logo"`
	CharityWebsite     string         `json:"charity_website"`
	Amount             DonationAmount `json:"amount"`
}
