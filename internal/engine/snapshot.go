package engine

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"token_analyzer/internal/entity"
)

const targetChainID = "bsc"

// liquidityUsd reads a pair's USD liquidity, tolerating the null liquidity
// objects DEX Screener occasionally returns.
func liquidityUsd(p entity.PairData) float64 {
	if p.Liquidity == nil {
		return 0
	}
	return p.Liquidity.Usd
}

// BuildMarketSnapshot selects the deepest BSC pair from the upstream list and
// maps it onto a MarketSnapshot. Missing fields become zero so downstream
// arithmetic never sees undefined values. An empty pair list yields the zero
// snapshot with "Unknown DEX" as the venue.
func BuildMarketSnapshot(pairs []entity.PairData) entity.MarketSnapshot {
	snap := entity.MarketSnapshot{DexName: "Unknown DEX"}
	if len(pairs) == 0 {
		return snap
	}

	candidates := make([]entity.PairData, 0, len(pairs))
	for _, p := range pairs {
		if p.ChainID == targetChainID {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = pairs
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return liquidityUsd(candidates[i]) > liquidityUsd(candidates[j])
	})
	pair := candidates[0]

	price, _ := strconv.ParseFloat(pair.PriceUsd, 64)

	snap.PairAddress = pair.PairAddress
	if pair.DexID != "" {
		snap.DexName = pair.DexID
	}
	snap.PriceUsd = price
	snap.PriceChange24hPct = pair.PriceChange.H24
	snap.PriceChange6hPct = pair.PriceChange.H6
	snap.PriceChange1hPct = pair.PriceChange.H1
	snap.PriceChange5mPct = pair.PriceChange.M5
	snap.Volume24hUsd = pair.Volume.H24
	snap.Volume6hUsd = pair.Volume.H6
	snap.Volume1hUsd = pair.Volume.H1
	snap.Volume5mUsd = pair.Volume.M5
	snap.LiquidityUsd = liquidityUsd(pair)
	snap.Fdv = pair.Fdv
	snap.Txns24h = pair.Txns.H24
	snap.Txns6h = pair.Txns.H6
	snap.Txns1h = pair.Txns.H1
	snap.Txns5m = pair.Txns.M5
	snap.PairCreatedAt = pair.PairCreatedAt
	return snap
}

// BestPair returns the highest-liquidity BSC pair, or false when none exists.
func BestPair(pairs []entity.PairData) (entity.PairData, bool) {
	best := entity.PairData{}
	found := false
	for _, p := range pairs {
		if p.ChainID != targetChainID {
			continue
		}
		if !found || liquidityUsd(p) > liquidityUsd(best) {
			best = p
			found = true
		}
	}
	return best, found
}

// ExtractSocials pulls websites and social platforms out of the pair info
// block, tolerating both the typed and the loose field variants of the feed.
func ExtractSocials(info *entity.PairInfo) entity.SocialPresence {
	presence := entity.SocialPresence{
		Websites:  []string{},
		Platforms: []entity.SocialPlatform{},
	}
	if info != nil {
		for _, w := range info.Websites {
			if w.URL != "" {
				presence.Websites = append(presence.Websites, w.URL)
			}
		}
		for _, s := range info.Socials {
			platform := s.Type
			if platform == "" {
				platform = s.Platform
			}
			if platform == "" {
				continue
			}
			handle := s.URL
			if handle == "" {
				handle = s.Handle
			}
			presence.Platforms = append(presence.Platforms, entity.SocialPlatform{
				Platform: platform,
				Handle:   handle,
			})
		}
	}
	presence.HasWebsite = len(presence.Websites) > 0
	for _, p := range presence.Platforms {
		platform := strings.ToLower(p.Platform)
		if strings.Contains(platform, "twitter") || platform == "x" || strings.Contains(platform, "telegram") {
			presence.HasTwitter = true
			break
		}
	}
	return presence
}

// TokenAgeDays derives the pair age in fractional days from its creation
// timestamp (milliseconds). Zero timestamp means unknown and yields zero.
func TokenAgeDays(pairCreatedAtMs int64, now time.Time) float64 {
	if pairCreatedAtMs <= 0 {
		return 0
	}
	ageMs := now.UnixMilli() - pairCreatedAtMs
	if ageMs < 0 {
		return 0
	}
	return float64(ageMs) / float64(24*time.Hour/time.Millisecond)
}
