package matching

import (
	"math"
	"testing"
)

func TestPlaceScore_RemotePolicy(t *testing.T) {
	jc := NewJobContext(Job{LocationPolicy: PolicyRemote})

	if s := jc.PlaceScore(FreelancerProfile{RemoteOK: true}).Score; s != 1.0 {
		t.Fatalf("remote-eligible candidate: expected 1.0, got %v", s)
	}
	if s := jc.PlaceScore(FreelancerProfile{RemoteOK: false}).Score; s != 0.0 {
		t.Fatalf("non-remote candidate: expected 0.0, got %v", s)
	}
}

func TestPlaceScore_OnsiteWithinRadius(t *testing.T) {
	jobPt := GeoPoint{Lat: 40.7128, Lon: -74.0060}
	candPt := GeoPoint{Lat: 40.730610, Lon: -73.935242}
	jc := NewJobContext(Job{
		LocationPolicy: PolicyOnsite,
		Location:       &jobPt,
		RadiusKm:       50,
	})
	res := jc.PlaceScore(FreelancerProfile{Locations: []GeoPoint{candPt}})
	if res.Score != 1.0 {
		t.Fatalf("expected 1.0 within radius, got %v", res.Score)
	}
}

func TestPlaceScore_OnsiteDistanceEqualsRadius(t *testing.T) {
	jobPt := GeoPoint{Lat: 0, Lon: 0}
	candPt := GeoPoint{Lat: 0, Lon: 1}
	d := HaversineKm(jobPt, candPt)

	jc := NewJobContext(Job{LocationPolicy: PolicyOnsite, Location: &jobPt, RadiusKm: d})
	res := jc.PlaceScore(FreelancerProfile{Locations: []GeoPoint{candPt}})
	if res.Score != 1.0 {
		t.Fatalf("expected 1.0 at exactly the radius, got %v", res.Score)
	}
}

func TestPlaceScore_OnsiteFalloffReachesZeroAtTripleRadius(t *testing.T) {
	jobPt := GeoPoint{Lat: 0, Lon: 0}
	candPt := GeoPoint{Lat: 0, Lon: 1}
	d := HaversineKm(jobPt, candPt)

	jc := NewJobContext(Job{LocationPolicy: PolicyOnsite, Location: &jobPt, RadiusKm: d / 3})
	res := jc.PlaceScore(FreelancerProfile{Locations: []GeoPoint{candPt}})
	if !almostEqual(res.Score, 0.0) {
		t.Fatalf("expected 0.0 at triple the radius, got %v", res.Score)
	}
}

func TestPlaceScore_OnsiteModeratelyOutsideRadius(t *testing.T) {
	jobPt := GeoPoint{Lat: 0, Lon: 0}
	candPt := GeoPoint{Lat: 0, Lon: 1}
	d := HaversineKm(jobPt, candPt)

	jc := NewJobContext(Job{LocationPolicy: PolicyOnsite, Location: &jobPt, RadiusKm: d / 2})
	res := jc.PlaceScore(FreelancerProfile{Locations: []GeoPoint{candPt}})
	if res.Score <= 0 || res.Score >= 1 {
		t.Fatalf("expected score strictly between 0 and 1, got %v", res.Score)
	}
}

func TestPlaceScore_HybridCombinesComponents(t *testing.T) {
	jobPt := GeoPoint{Lat: 0, Lon: 0}
	jc := NewJobContext(Job{LocationPolicy: PolicyHybrid, Location: &jobPt, RadiusKm: 50})

	// Candidate at the job location, remote-eligible: 0.6 + 0.4*1.0 = 1.0.
	res := jc.PlaceScore(FreelancerProfile{RemoteOK: true, Locations: []GeoPoint{jobPt}})
	if !almostEqual(res.Score, 1.0) {
		t.Fatalf("expected 1.0 for colocated remote-eligible candidate, got %v", res.Score)
	}

	// Not remote-eligible, 100km away: 0.4 * (1 - 100/200) = 0.2.
	candPt := GeoPoint{Lat: 0, Lon: 1}
	d := HaversineKm(jobPt, candPt)
	want := 0.4 * (1 - d/200)
	res = jc.PlaceScore(FreelancerProfile{RemoteOK: false, Locations: []GeoPoint{candPt}})
	if math.Abs(res.Score-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, res.Score)
	}
}

func TestPlaceScore_MissingLocationData(t *testing.T) {
	jc := NewJobContext(Job{LocationPolicy: PolicyOnsite})
	res := jc.PlaceScore(FreelancerProfile{})
	if res.Score != 0.1 {
		t.Fatalf("expected 0.1 for missing location data, got %v", res.Score)
	}
}

func TestPlaceScore_UsesNearestCandidateLocation(t *testing.T) {
	jobPt := GeoPoint{Lat: 0, Lon: 0}
	near := GeoPoint{Lat: 0, Lon: 0.1}
	far := GeoPoint{Lat: 0, Lon: 10}
	jc := NewJobContext(Job{LocationPolicy: PolicyOnsite, Location: &jobPt, RadiusKm: 50})

	res := jc.PlaceScore(FreelancerProfile{Locations: []GeoPoint{far, near}})
	if res.Score != 1.0 {
		t.Fatalf("expected nearest point within radius to win, got %v", res.Score)
	}
}
